package notify

import (
	"context"
	"time"

	"donation-app/internal/domain/donations"
	"donation-app/internal/mail"

	"go.uber.org/zap"
)

// Dispatcher fans a verified payment out to the donor receipt and the
// internal alert. The two sends are independent: each failure is logged
// and recorded, and neither aborts the other. Nothing here deduplicates —
// invoking Dispatch twice for the same session sends duplicate emails, so
// callers must trigger it at most once per completed session.
type Dispatcher struct {
	Mailer          mail.Mailer
	Log             *zap.Logger
	From            string
	AdminRecipients []string
	OrgName         string
	EIN             string

	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
}

// Dispatch attempts both notifications and reports their outcomes. It
// never returns an error: a donor whose payment already succeeded must
// never see a failure because an email did not go out.
func (d *Dispatcher) Dispatch(ctx context.Context, payment *donations.CompletedPayment) donations.DispatchResult {
	now := time.Now()
	if d.Now != nil {
		now = d.Now()
	}

	result := donations.DispatchResult{
		Receipt: d.sendReceipt(ctx, payment, now),
		Admin:   d.sendAdminAlert(ctx, payment),
	}

	d.Log.Info("donation notifications dispatched",
		zap.String("session_id", payment.SessionID),
		zap.String("receipt", string(result.Receipt)),
		zap.String("admin", string(result.Admin)),
	)
	return result
}

func (d *Dispatcher) sendReceipt(ctx context.Context, payment *donations.CompletedPayment, now time.Time) donations.NotificationOutcome {
	subject, body, err := RenderReceipt(ReceiptInput{
		Tier:          payment.Tier,
		AmountCents:   payment.AmountCents,
		SessionID:     payment.SessionID,
		PublicSponsor: payment.PublicSponsor,
		Date:          now,
		OrgName:       d.OrgName,
		EIN:           d.EIN,
	})
	if err == nil {
		err = d.Mailer.Send(ctx, mail.Message{
			From:    d.From,
			To:      []string{payment.DonorEmail},
			Subject: subject,
			HTML:    body,
		})
	}
	if err != nil {
		d.Log.Error("sending donation receipt failed",
			zap.String("session_id", payment.SessionID),
			zap.Error(err),
		)
		return donations.OutcomeFailed
	}
	return donations.OutcomeSent
}

func (d *Dispatcher) sendAdminAlert(ctx context.Context, payment *donations.CompletedPayment) donations.NotificationOutcome {
	subject, body, err := RenderAdminAlert(AdminInput{
		FullName:      payment.FullName,
		Email:         payment.DonorEmail,
		Phone:         payment.DonorPhone,
		Address:       payment.BillingAddress,
		AmountCents:   payment.AmountCents,
		Tier:          payment.Tier,
		PublicSponsor: payment.PublicSponsor,
		OrgName:       d.OrgName,
	})
	if err == nil {
		err = d.Mailer.Send(ctx, mail.Message{
			From:    d.From,
			To:      d.AdminRecipients,
			Subject: subject,
			HTML:    body,
		})
	}
	if err != nil {
		d.Log.Error("sending admin notification failed",
			zap.String("session_id", payment.SessionID),
			zap.Error(err),
		)
		return donations.OutcomeFailed
	}
	return donations.OutcomeSent
}
