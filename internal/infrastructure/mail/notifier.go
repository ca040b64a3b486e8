// Package mail implementa el aviso por SMTP al operador cuando se registra
// una empresa pendiente de aprobación.
package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/tu-usuario/fabrica-pro/internal/application/auth"
	"github.com/tu-usuario/fabrica-pro/internal/domain/entity"
	"github.com/tu-usuario/fabrica-pro/pkg/config"
)

var _ auth.ApprovalNotifier = (*Notifier)(nil)

// Notifier envía el aviso de registro por SMTP.
type Notifier struct {
	cfg config.MailConfig
}

// NewNotifier construye el notificador con la configuración SMTP.
func NewNotifier(cfg config.MailConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// CompanyRegistered avisa al operador que hay una empresa nueva esperando
// aprobación, con el enlace para aprobarla.
func (n *Notifier) CompanyRegistered(_ context.Context, company *entity.Company) error {
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	subject := fmt.Sprintf("Nueva empresa registrada: %s", company.Name)
	body := fmt.Sprintf(
		"La empresa %s (%s) se registró y espera aprobación.\r\n\r\nAprobar: %s/%s/approve\r\n",
		company.Name, company.Email, n.cfg.ApproveBaseURL, company.ID,
	)
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		n.cfg.From, n.cfg.OperatorAddress, subject, body)

	var a smtp.Auth
	if n.cfg.Password != "" {
		a = smtp.PlainAuth("", n.cfg.From, n.cfg.Password, n.cfg.Host)
	}
	return smtp.SendMail(addr, a, n.cfg.From, []string{n.cfg.OperatorAddress}, []byte(msg))
}
