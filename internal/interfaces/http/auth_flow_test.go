package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/fabrica-pro/internal/application/auth"
	"github.com/tu-usuario/fabrica-pro/internal/application/dto"
	"github.com/tu-usuario/fabrica-pro/internal/application/usecase"
	"github.com/tu-usuario/fabrica-pro/internal/domain"
	"github.com/tu-usuario/fabrica-pro/internal/domain/entity"
	"github.com/tu-usuario/fabrica-pro/internal/domain/repository"
	apphttp "github.com/tu-usuario/fabrica-pro/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/fabrica-pro/pkg/jwt"
	"github.com/tu-usuario/fabrica-pro/pkg/logger"
)

// Flujo completo del registro de una empresa contra el router real:
// registro público, login bloqueado hasta la aprobación del superusuario y
// alta de usuarios acotada a la empresa del admin.

type memUserRepo struct{ users map[string]*entity.User }

func (r *memUserRepo) Create(u *entity.User) error {
	for _, e := range r.users {
		if e.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}
func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) UpdatePassword(id, hash string) error {
	if u, ok := r.users[id]; ok {
		u.PasswordHash = hash
	}
	return nil
}
func (r *memUserRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.CompanyID == companyID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *memUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

type memCompanyRepo struct{ companies map[string]*entity.Company }

func (r *memCompanyRepo) Create(c *entity.Company) error {
	for _, e := range r.companies {
		if e.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}
func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}
func (r *memCompanyRepo) GetByName(name string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *memCompanyRepo) Update(c *entity.Company) error {
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}
func (r *memCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}
func (r *memCompanyRepo) Delete(id string) error {
	delete(r.companies, id)
	return nil
}

type memTxRunner struct {
	companies *memCompanyRepo
	users     *memUserRepo
}

func (t *memTxRunner) Run(ctx context.Context, fn func(companies repository.CompanyRepository, users repository.UserRepository) error) error {
	companiesSnap := make(map[string]*entity.Company, len(t.companies.companies))
	for k, v := range t.companies.companies {
		cp := *v
		companiesSnap[k] = &cp
	}
	usersSnap := make(map[string]*entity.User, len(t.users.users))
	for k, v := range t.users.users {
		cp := *v
		usersSnap[k] = &cp
	}
	if err := fn(t.companies, t.users); err != nil {
		t.companies.companies = companiesSnap
		t.users.users = usersSnap
		return err
	}
	return nil
}

type testEnv struct {
	app       *fiber.App
	users     *memUserRepo
	companies *memCompanyRepo
}

const flowJWTSecret = "flow-test-secret"

func buildFlowEnv(t *testing.T) *testEnv {
	t.Helper()
	users := &memUserRepo{users: map[string]*entity.User{}}
	companies := &memCompanyRepo{companies: map[string]*entity.Company{}}
	tx := &memTxRunner{companies: companies, users: users}

	authUC := auth.NewAuthUseCase(users, companies, tx, nil, auth.Config{
		JWTSecret:      flowJWTSecret,
		AccessMinutes:  60,
		RefreshHours:   72,
		Issuer:         testIssuer,
		ApprovalWindow: 7 * 24 * time.Hour,
	}, logger.Nop())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		UserUC:      usecase.NewUserUseCase(users),
		CompanyUC:   usecase.NewCompanyUseCase(companies, 7*24*time.Hour),
		WarehouseUC: usecase.NewWarehouseUseCase(nil),
		SupplierUC:  usecase.NewSupplierUseCase(nil),
		ClientUC:    usecase.NewClientUseCase(nil),
		MaterialUC:  usecase.NewMaterialUseCase(nil),
		ProductUC:   usecase.NewProductUseCase(nil, nil),
		InventoryUC: usecase.NewInventoryUseCase(nil, nil, nil, nil, nil, nil),
		OrderUC:     usecase.NewOrderUseCase(nil, nil),
		ProductionUC: usecase.NewProductionUseCase(
			nil, nil, nil, nil, nil, nil),
		JWTSecret: flowJWTSecret,
	})
	return &testEnv{app: app, users: users, companies: companies}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func superuserToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.GenerateAccess(flowJWTSecret, pkgjwt.Identity{
		UserID:      "root",
		IsSuperuser: true,
	}, testIssuer, 60)
	require.NoError(t, err)
	return tok
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestFlujoRegistroAprobacionYAltaDeUsuarios(t *testing.T) {
	env := buildFlowEnv(t)

	// 1. Registro público de la empresa con su admin.
	resp := env.do(t, http.MethodPost, "/api/auth/register/company", "", dto.RegisterCompanyRequest{
		Name:          "Aromas del Sur",
		Domain:        "aromasdelsur.co",
		Email:         "contacto@aromasdelsur.co",
		AdminUsername: "admin_aromas",
		AdminEmail:    "admin@aromasdelsur.co",
		AdminPassword: "secreta-123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	registered := decodeJSON[dto.RegisterCompanyResponse](t, resp)
	assert.False(t, registered.Company.IsActive, "la empresa nace inactiva")

	login := dto.LoginRequest{Username: "admin_aromas", Password: "secreta-123"}

	// 2. Sin aprobación, el login se rechaza con 401.
	resp = env.do(t, http.MethodPost, "/api/auth/login", "", login)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"el admin no puede entrar mientras la empresa esté pendiente")
	resp.Body.Close()

	// 3. El superusuario aprueba la empresa.
	resp = env.do(t, http.MethodPatch, "/api/companies/"+registered.Company.ID+"/approve", superuserToken(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	approved := decodeJSON[dto.CompanyResponse](t, resp)
	assert.True(t, approved.IsActive)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), approved.ExpirationDate, time.Minute,
		"la aprobación otorga la ventana de vigencia completa")

	// 4. Ahora el login funciona y entrega el par de tokens.
	resp = env.do(t, http.MethodPost, "/api/auth/login", "", login)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tokens := decodeJSON[dto.TokenPairResponse](t, resp)
	require.NotEmpty(t, tokens.Access)
	require.NotEmpty(t, tokens.Refresh)

	// 5. El admin crea un empacador sin indicar empresa: queda en la suya.
	resp = env.do(t, http.MethodPost, "/api/users", tokens.Access, dto.CreateUserRequest{
		Username: "empacador_aromas",
		Password: "otra-secreta-123",
		Email:    "empacador@aromasdelsur.co",
		Role:     entity.RoleEmpacador,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeJSON[dto.UserResponse](t, resp)
	assert.Equal(t, registered.Company.ID, created.CompanyID)
	assert.Equal(t, entity.RoleEmpacador, created.Role)

	// 6. Un username repetido responde 409.
	resp = env.do(t, http.MethodPost, "/api/users", tokens.Access, dto.CreateUserRequest{
		Username: "empacador_aromas",
		Password: "otra-secreta-123",
		Role:     entity.RoleEmpacador,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// 7. El refresh canjea un access nuevo.
	resp = env.do(t, http.MethodPost, "/api/auth/token/refresh", "", dto.RefreshRequest{Refresh: tokens.Refresh})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	refreshed := decodeJSON[dto.AccessTokenResponse](t, resp)
	assert.NotEmpty(t, refreshed.Access)
}

func TestLogin_EmpresaVencidaMismoCodigoQueDesconocida(t *testing.T) {
	env := buildFlowEnv(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secreta-123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	env.companies.companies["emp-1"] = &entity.Company{
		ID:             "emp-1",
		Name:           "Vencida SA",
		IsActive:       true,
		ExpirationDate: time.Now().Add(-time.Hour),
		CreatedAt:      time.Now().Add(-30 * 24 * time.Hour),
	}
	env.users.users["u-1"] = &entity.User{
		ID:           "u-1",
		CompanyID:    "emp-1",
		Username:     "admin_vencida",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	}

	// Empresa vencida y usuario inexistente devuelven el mismo código.
	for _, username := range []string{"admin_vencida", "nadie"} {
		resp := env.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
			Username: username,
			Password: "secreta-123",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		body := decodeJSON[dto.ErrorResponse](t, resp)
		assert.Equal(t, "COMPANY_NOT_ELIGIBLE", body.Code, "username %q", username)
	}
}
