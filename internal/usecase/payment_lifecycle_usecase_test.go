package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"salao_xpto/internal/domain/entities"
	mock_interfaces "salao_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testPolicy() entities.PricingPolicy {
	return entities.PricingPolicy{
		RequirePayment: true,
		ChargeMode:     entities.ChargeModePartialPercent,
		PartialPercent: 50,
		ExpiryMinutes:  30,
		Pix: entities.PixIdentity{
			KeyType:    entities.PixKeyTypeEmail,
			Key:        "pagamentos@salao.com.br",
			HolderName: "Salão Bela Vista",
			City:       "São Paulo",
		},
	}
}

func testSettings() entities.WorkspaceSettings {
	return entities.WorkspaceSettings{WorkspaceID: "ws-1", Policy: testPolicy()}
}

func TestPaymentLifecycleUseCase_Create_Validations(t *testing.T) {
	uc := NewPaymentLifecycleUseCase(nil, nil, nil)

	t.Run("empty appointment id", func(t *testing.T) {
		_, err := uc.CreateForAppointment(context.Background(), CreatePaymentInput{AppointmentID: " ", WorkspaceID: "ws-1", ServiceTotalCents: 100})
		if !errors.Is(err, ErrInvalidAppointmentID) {
			t.Fatalf("expected ErrInvalidAppointmentID, got %v", err)
		}
	})

	t.Run("empty workspace id", func(t *testing.T) {
		_, err := uc.CreateForAppointment(context.Background(), CreatePaymentInput{AppointmentID: "agd-1", ServiceTotalCents: 100})
		if !errors.Is(err, ErrInvalidWorkspaceID) {
			t.Fatalf("expected ErrInvalidWorkspaceID, got %v", err)
		}
	})

	t.Run("negative total", func(t *testing.T) {
		_, err := uc.CreateForAppointment(context.Background(), CreatePaymentInput{AppointmentID: "agd-1", WorkspaceID: "ws-1", ServiceTotalCents: -1})
		if !errors.Is(err, ErrInvalidServiceTotal) {
			t.Fatalf("expected ErrInvalidServiceTotal, got %v", err)
		}
	})
}

func TestPaymentLifecycleUseCase_Create_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	uc := NewPaymentLifecycleUseCase(payments, nil, nil)

	existing := entities.Payment{ID: "pay-1", AppointmentID: "agd-1", Status: entities.PaymentStatusPendente}
	payments.EXPECT().GetByAppointmentID(gomock.Any(), "agd-1").Return(existing, nil)

	got, err := uc.CreateForAppointment(context.Background(), CreatePaymentInput{AppointmentID: "agd-1", WorkspaceID: "ws-1", ServiceTotalCents: 20000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "pay-1" {
		t.Fatalf("expected existing payment back, got %+v", got)
	}
}

func TestPaymentLifecycleUseCase_Create_AppointmentNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	uc := NewPaymentLifecycleUseCase(payments, appointments, nil)

	payments.EXPECT().GetByAppointmentID(gomock.Any(), "agd-1").Return(entities.Payment{}, nil)
	appointments.EXPECT().GetByID(gomock.Any(), "agd-1").Return(entities.Appointment{}, nil)

	_, err := uc.CreateForAppointment(context.Background(), CreatePaymentInput{AppointmentID: "agd-1", WorkspaceID: "ws-1", ServiceTotalCents: 20000})
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestPaymentLifecycleUseCase_Create_NotRequired(t *testing.T) {
	run := func(t *testing.T, settings entities.WorkspaceSettings, totalCents int64) error {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		settingsRepo := mock_interfaces.NewMockIWorkspaceSettingsRepository(ctrl)
		uc := NewPaymentLifecycleUseCase(payments, appointments, settingsRepo)

		payments.EXPECT().GetByAppointmentID(gomock.Any(), "agd-1").Return(entities.Payment{}, nil)
		appointments.EXPECT().GetByID(gomock.Any(), "agd-1").Return(entities.Appointment{ID: "agd-1", WorkspaceID: "ws-1"}, nil)
		settingsRepo.EXPECT().GetByWorkspaceID(gomock.Any(), "ws-1").Return(settings, nil)

		_, err := uc.CreateForAppointment(context.Background(), CreatePaymentInput{AppointmentID: "agd-1", WorkspaceID: "ws-1", ServiceTotalCents: totalCents})
		return err
	}

	t.Run("no settings", func(t *testing.T) {
		if err := run(t, entities.WorkspaceSettings{}, 20000); !errors.Is(err, ErrPaymentNotRequired) {
			t.Fatalf("expected ErrPaymentNotRequired, got %v", err)
		}
	})

	t.Run("require_payment off", func(t *testing.T) {
		s := testSettings()
		s.Policy.RequirePayment = false
		if err := run(t, s, 20000); !errors.Is(err, ErrPaymentNotRequired) {
			t.Fatalf("expected ErrPaymentNotRequired, got %v", err)
		}
	})

	t.Run("charge mode none", func(t *testing.T) {
		s := testSettings()
		s.Policy.ChargeMode = entities.ChargeModeNone
		if err := run(t, s, 20000); !errors.Is(err, ErrPaymentNotRequired) {
			t.Fatalf("expected ErrPaymentNotRequired, got %v", err)
		}
	})

	t.Run("zero service total", func(t *testing.T) {
		if err := run(t, testSettings(), 0); !errors.Is(err, ErrPaymentNotRequired) {
			t.Fatalf("expected ErrPaymentNotRequired, got %v", err)
		}
	})

	t.Run("unresolvable mode is a config error", func(t *testing.T) {
		s := testSettings()
		s.Policy.ChargeMode = entities.ChargeMode("subscription")
		if err := run(t, s, 20000); !errors.Is(err, ErrInvalidChargeConfiguration) {
			t.Fatalf("expected ErrInvalidChargeConfiguration, got %v", err)
		}
	})
}

func TestPaymentLifecycleUseCase_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	settingsRepo := mock_interfaces.NewMockIWorkspaceSettingsRepository(ctrl)
	uc := NewPaymentLifecycleUseCase(payments, appointments, settingsRepo)

	payments.EXPECT().GetByAppointmentID(gomock.Any(), "agd-1").Return(entities.Payment{}, nil)
	appointments.EXPECT().GetByID(gomock.Any(), "agd-1").Return(entities.Appointment{ID: "agd-1", WorkspaceID: "ws-1", Status: entities.AppointmentStatusAguardandoPagamento}, nil)
	settingsRepo.EXPECT().GetByWorkspaceID(gomock.Any(), "ws-1").Return(testSettings(), nil)

	var stored entities.Payment
	payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			stored = p
			return p, nil
		})

	got, err := uc.CreateForAppointment(context.Background(), CreatePaymentInput{AppointmentID: "agd-1", WorkspaceID: "ws-1", ServiceTotalCents: 20000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 50% of R$200,00.
	if got.AmountCents != 10000 {
		t.Fatalf("expected amount 10000, got %d", got.AmountCents)
	}
	if got.ServiceTotalCents != 20000 {
		t.Fatalf("expected service total 20000, got %d", got.ServiceTotalCents)
	}
	if got.Status != entities.PaymentStatusPendente {
		t.Fatalf("expected pendente, got %s", got.Status)
	}
	if want := stored.CreatedAt.Add(30 * time.Minute); !stored.ExpiresAt.Equal(want) {
		t.Fatalf("expected expiry 30min after creation, got %s (created %s)", stored.ExpiresAt, stored.CreatedAt)
	}
	if got.ID == "" {
		t.Fatalf("expected generated payment id")
	}
	if !strings.Contains(got.PayloadText, "BR.GOV.BCB.PIX") {
		t.Fatalf("expected BR Code payload, got %q", got.PayloadText)
	}
	if !strings.Contains(got.PayloadText, "100.00") {
		t.Fatalf("expected amount 100.00 in payload, got %q", got.PayloadText)
	}
}

func TestPaymentLifecycleUseCase_Create_IncompleteIdentityTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	settingsRepo := mock_interfaces.NewMockIWorkspaceSettingsRepository(ctrl)
	uc := NewPaymentLifecycleUseCase(payments, appointments, settingsRepo)

	s := testSettings()
	s.Policy.Pix.Key = ""

	payments.EXPECT().GetByAppointmentID(gomock.Any(), "agd-1").Return(entities.Payment{}, nil)
	appointments.EXPECT().GetByID(gomock.Any(), "agd-1").Return(entities.Appointment{ID: "agd-1"}, nil)
	settingsRepo.EXPECT().GetByWorkspaceID(gomock.Any(), "ws-1").Return(s, nil)
	payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })

	got, err := uc.CreateForAppointment(context.Background(), CreatePaymentInput{AppointmentID: "agd-1", WorkspaceID: "ws-1", ServiceTotalCents: 20000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PayloadText != "" {
		t.Fatalf("expected empty payload for incomplete identity, got %q", got.PayloadText)
	}
	if got.AmountCents != 10000 {
		t.Fatalf("charge itself must survive, got amount %d", got.AmountCents)
	}
}

func TestPaymentLifecycleUseCase_Create_RaceReturnsWinner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	settingsRepo := mock_interfaces.NewMockIWorkspaceSettingsRepository(ctrl)
	uc := NewPaymentLifecycleUseCase(payments, appointments, settingsRepo)

	winner := entities.Payment{ID: "pay-other", AppointmentID: "agd-1", Status: entities.PaymentStatusPendente}

	gomock.InOrder(
		payments.EXPECT().GetByAppointmentID(gomock.Any(), "agd-1").Return(entities.Payment{}, nil),
		appointments.EXPECT().GetByID(gomock.Any(), "agd-1").Return(entities.Appointment{ID: "agd-1"}, nil),
		settingsRepo.EXPECT().GetByWorkspaceID(gomock.Any(), "ws-1").Return(testSettings(), nil),
		payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Payment{}, nil),
		payments.EXPECT().GetByAppointmentID(gomock.Any(), "agd-1").Return(winner, nil),
	)

	got, err := uc.CreateForAppointment(context.Background(), CreatePaymentInput{AppointmentID: "agd-1", WorkspaceID: "ws-1", ServiceTotalCents: 20000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "pay-other" {
		t.Fatalf("expected winner row, got %+v", got)
	}
}

func TestPaymentLifecycleUseCase_Confirm(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentLifecycleUseCase(payments, nil, nil)

		paid := entities.Payment{ID: "pay-1", AppointmentID: "agd-1", Status: entities.PaymentStatusPago, ConfirmedBy: "user-9"}
		payments.EXPECT().ConfirmPending(gomock.Any(), "agd-1", "user-9", gomock.Any()).Return(paid, nil)

		got, err := uc.Confirm(context.Background(), "agd-1", "user-9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.PaymentStatusPago {
			t.Fatalf("expected pago, got %s", got.Status)
		}
	})

	t.Run("missing actor", func(t *testing.T) {
		uc := NewPaymentLifecycleUseCase(nil, nil, nil)
		if _, err := uc.Confirm(context.Background(), "agd-1", " "); !errors.Is(err, ErrInvalidActorID) {
			t.Fatalf("expected ErrInvalidActorID, got %v", err)
		}
	})

	t.Run("after cancel is an invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentLifecycleUseCase(payments, nil, nil)

		payments.EXPECT().ConfirmPending(gomock.Any(), "agd-1", "user-9", gomock.Any()).Return(entities.Payment{}, nil)
		payments.EXPECT().GetByAppointmentID(gomock.Any(), "agd-1").Return(entities.Payment{ID: "pay-1", Status: entities.PaymentStatusCancelado}, nil)

		_, err := uc.Confirm(context.Background(), "agd-1", "user-9")
		if !errors.Is(err, ErrInvalidStateTransition) {
			t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
		}
		var tErr *InvalidStateTransitionError
		if !errors.As(err, &tErr) {
			t.Fatalf("expected InvalidStateTransitionError, got %T", err)
		}
		if tErr.Current != entities.PaymentStatusCancelado || tErr.Attempted != entities.PaymentStatusPago {
			t.Fatalf("unexpected states in %+v", tErr)
		}
		if !strings.Contains(err.Error(), "cancelado") || !strings.Contains(err.Error(), "pago") {
			t.Fatalf("message must name both states: %q", err.Error())
		}
	})

	t.Run("lost race still pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentLifecycleUseCase(payments, nil, nil)

		payments.EXPECT().ConfirmPending(gomock.Any(), "agd-1", "user-9", gomock.Any()).Return(entities.Payment{}, nil)
		payments.EXPECT().GetByAppointmentID(gomock.Any(), "agd-1").Return(entities.Payment{ID: "pay-1", Status: entities.PaymentStatusPendente}, nil)

		if _, err := uc.Confirm(context.Background(), "agd-1", "user-9"); !errors.Is(err, ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentLifecycleUseCase(payments, nil, nil)

		payments.EXPECT().ConfirmPending(gomock.Any(), "agd-1", "user-9", gomock.Any()).Return(entities.Payment{}, nil)
		payments.EXPECT().GetByAppointmentID(gomock.Any(), "agd-1").Return(entities.Payment{}, nil)

		if _, err := uc.Confirm(context.Background(), "agd-1", "user-9"); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}

func TestPaymentLifecycleUseCase_Cancel(t *testing.T) {
	t.Run("success with default reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentLifecycleUseCase(payments, nil, nil)

		cancelled := entities.Payment{ID: "pay-1", Status: entities.PaymentStatusCancelado}
		payments.EXPECT().CancelPending(gomock.Any(), "agd-1", "user-9", "cancelado pelo atendimento", gomock.Any()).Return(cancelled, nil)

		got, err := uc.Cancel(context.Background(), "agd-1", "user-9", "  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.PaymentStatusCancelado {
			t.Fatalf("expected cancelado, got %s", got.Status)
		}
	})

	t.Run("after confirm is an invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentLifecycleUseCase(payments, nil, nil)

		payments.EXPECT().CancelPending(gomock.Any(), "agd-1", "user-9", "nao compareceu", gomock.Any()).Return(entities.Payment{}, nil)
		payments.EXPECT().GetByAppointmentID(gomock.Any(), "agd-1").Return(entities.Payment{ID: "pay-1", Status: entities.PaymentStatusPago}, nil)

		_, err := uc.Cancel(context.Background(), "agd-1", "user-9", "nao compareceu")
		var tErr *InvalidStateTransitionError
		if !errors.As(err, &tErr) {
			t.Fatalf("expected InvalidStateTransitionError, got %v", err)
		}
		if tErr.Current != entities.PaymentStatusPago || tErr.Attempted != entities.PaymentStatusCancelado {
			t.Fatalf("unexpected states in %+v", tErr)
		}
	})
}

func TestPaymentLifecycleUseCase_GetByAppointmentID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	uc := NewPaymentLifecycleUseCase(payments, nil, nil)

	payments.EXPECT().GetByAppointmentID(gomock.Any(), "agd-1").Return(entities.Payment{}, nil)
	if _, err := uc.GetByAppointmentID(context.Background(), "agd-1"); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}

	if _, err := uc.GetByAppointmentID(context.Background(), "  "); !errors.Is(err, ErrInvalidAppointmentID) {
		t.Fatalf("expected ErrInvalidAppointmentID, got %v", err)
	}
}
