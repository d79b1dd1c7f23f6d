// Package sendcv implements the send-cv endpoint: decode the form, render
// the PDF, mail it.
package sendcv

import (
	"context"
	"fmt"
	"time"

	"cv-mailer/internal/delivery"
	"cv-mailer/internal/shared/metrics"
	"cv-mailer/internal/shared/telemetry"
	"cv-mailer/internal/shared/util"
	"cv-mailer/resume/model"
	"cv-mailer/resume/render"
)

// Dispatcher sends a rendered CV.
type Dispatcher interface {
	Dispatch(ctx context.Context, req delivery.Request) (delivery.Receipt, error)
}

// Service renders and dispatches CVs.
type Service struct {
	Delivery Dispatcher
	Render   func(model.ApplicantForm) (render.Document, error)
}

// NewService constructs a Service that renders with render.RenderCV.
func NewService(d Dispatcher) *Service {
	return &Service{Delivery: d, Render: render.RenderCV}
}

// Result summarizes a delivered CV.
type Result struct {
	Style    model.Style
	Overflow bool
	Receipt  delivery.Receipt
}

// Send renders form and mails the PDF.
func (s *Service) Send(ctx context.Context, requestID string, form model.ApplicantForm) (Result, error) {
	start := time.Now()
	doc, err := s.Render(form)
	if err != nil {
		return Result{}, fmt.Errorf("render cv: %w", err)
	}
	metrics.ObserveRenderDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	metrics.IncRendered()

	res := Result{Style: doc.Style, Overflow: doc.Overflow}
	if doc.Overflow {
		metrics.IncOverflow()
		telemetry.Warn("cv.overflow", map[string]any{
			"request_id": requestID,
			"style":      string(doc.Style),
		})
	}

	receipt, err := s.Delivery.Dispatch(ctx, delivery.Request{
		Email:    form.Email,
		Name:     form.Name,
		Style:    doc.Style,
		Document: doc.Bytes,
	})
	if err != nil {
		return res, err
	}
	res.Receipt = receipt
	metrics.IncDelivered()
	telemetry.Info("cv.sent", map[string]any{
		"request_id":     requestID,
		"style":          string(doc.Style),
		"transport":      receipt.Transport,
		"recipient_hash": util.HashKey(receipt.To),
		"bytes":          len(doc.Bytes),
	})
	return res, nil
}
