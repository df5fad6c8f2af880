package services

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"

	"github.com/rgm-logistics/forms-api/internal/config"
	"github.com/rgm-logistics/forms-api/internal/forms"
	"github.com/rgm-logistics/forms-api/pkg/utils"
)

// FormService runs the shared pipeline for every submission endpoint:
// validate against the schema, fill defaults, then relay the submission as
// two emails (owner notice first, submitter acknowledgment second).
type FormService interface {
	Submit(ctx context.Context, sch *forms.Schema, sub *forms.Submission) error
	Ping(ctx context.Context) error // tiny health-probe
}

type formService struct {
	cfg    *config.Config
	mailer Mailer
}

func NewFormService(cfg *config.Config, mailer Mailer) FormService {
	return &formService{cfg: cfg, mailer: mailer}
}

// ------------------------------------------------------------------
// Public API
// ------------------------------------------------------------------

func (s *formService) Submit(ctx context.Context, sch *forms.Schema, sub *forms.Submission) error {
	if rej := sch.Validate(sub); rej != nil {
		return rej
	}
	sch.ApplyDefaults(sub)

	utils.Logger.WithFields(logrus.Fields{
		"form":        sch.Kind,
		"email":       sub.Get("email"),
		"attachments": len(sub.Attachments),
	}).Info("Valid submission accepted")

	if s.cfg.DispatchBlocking() {
		if err := s.dispatch(sch, sub); err != nil {
			utils.Logger.WithError(err).Errorf("%s dispatch failed", sch.Kind)
			s.logPayload(sch, sub)
			return &forms.RejectionError{
				Kind:    forms.DispatchFailed,
				Message: "Failed to send notification emails",
			}
		}
		return nil
	}

	// Fire-and-forget: the sends outlive this request. Failures are logged
	// by the goroutine and never reach the caller.
	go s.dispatchBackground(sch, sub)
	return nil
}

func (s *formService) Ping(_ context.Context) error {
	// Nothing external to probe cheaply; just ensure the SendGrid key looks sane.
	if len(s.cfg.SendgridAPIKey) < 10 {
		return fmt.Errorf("sendgrid key too short")
	}
	return nil
}

// ------------------------------------------------------------------
// internals
// ------------------------------------------------------------------

// dispatch sends both notifications in order. Once the owner notice has
// definitively failed, the acknowledgment is not attempted: a partial send
// must never be reported as success.
func (s *formService) dispatch(sch *forms.Schema, sub *forms.Submission) error {
	if err := s.sendOwnerNotice(sch, sub); err != nil {
		return err
	}
	return s.sendAck(sch, sub)
}

// dispatchBackground attempts both sends best-effort, regardless of the
// first's outcome. On any failure the full submission payload is logged;
// that log line is the only recovery path, there is no queue or retry.
func (s *formService) dispatchBackground(sch *forms.Schema, sub *forms.Submission) {
	failed := false
	if err := s.sendOwnerNotice(sch, sub); err != nil {
		utils.Logger.WithError(err).Errorf("%s owner notice failed (background)", sch.Kind)
		failed = true
	}
	if err := s.sendAck(sch, sub); err != nil {
		utils.Logger.WithError(err).Errorf("%s acknowledgment failed (background)", sch.Kind)
		failed = true
	}
	if failed {
		s.logPayload(sch, sub)
	}
}

// logPayload records the full submission (values plus attachment names, not
// bytes) so an undelivered submission can be resent by hand. This is the
// only recovery mechanism; there is no queue or retry.
func (s *formService) logPayload(sch *forms.Schema, sub *forms.Submission) {
	names := make([]string, 0, len(sub.Attachments))
	for _, a := range sub.Attachments {
		names = append(names, a.Filename)
	}
	utils.Logger.WithFields(logrus.Fields{
		"form":        sch.Kind,
		"payload":     sub.Values,
		"attachments": names,
	}).Warn("Submission not delivered; payload logged for manual follow-up")
}

func (s *formService) sendOwnerNotice(sch *forms.Schema, sub *forms.Submission) error {
	from := mail.NewEmail(s.cfg.OrgName+" Forms", s.cfg.FromEmail)
	to := mail.NewEmail(s.cfg.OrgName+" Team", s.cfg.OwnerEmail)

	plain, htmlContent := sch.OwnerBody(sub)
	msg := mail.NewSingleEmail(from, sch.OwnerSubject, to, plain, htmlContent)

	for _, a := range sub.Attachments {
		att := mail.NewAttachment()
		att.SetContent(base64.StdEncoding.EncodeToString(a.Data))
		att.SetType(a.ContentType)
		att.SetFilename(a.Filename)
		att.SetDisposition("attachment")
		msg.AddAttachment(att)
	}

	return s.mailer.Send(msg)
}

func (s *formService) sendAck(sch *forms.Schema, sub *forms.Submission) error {
	from := mail.NewEmail(s.cfg.OrgName, s.cfg.FromEmail)
	to := mail.NewEmail("", sub.Get("email"))

	plain, htmlContent := sch.AckBody(sub)
	msg := mail.NewSingleEmail(from, sch.AckSubject, to, plain, htmlContent)
	return s.mailer.Send(msg)
}
