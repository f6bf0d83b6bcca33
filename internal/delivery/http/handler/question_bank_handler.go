package handler

import (
	"github.com/evandrarf/quizdrill/internal/delivery/http/domain"
	"github.com/evandrarf/quizdrill/internal/delivery/http/entity"
	"github.com/evandrarf/quizdrill/internal/delivery/http/usecase"
	"github.com/evandrarf/quizdrill/internal/pkg/response"
	"github.com/evandrarf/quizdrill/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	QuestionBankHandler interface {
		ListBanks(ctx *fiber.Ctx) error
		GetLastUsed(ctx *fiber.Ctx) error
		SetLastUsed(ctx *fiber.Ctx) error
		ListWrong(ctx *fiber.Ctx) error
		RemoveWrong(ctx *fiber.Ctx) error
		GetExamConfig(ctx *fiber.Ctx) error
		UpdateExamConfig(ctx *fiber.Ctx) error
	}

	questionBankHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.QuestionBankUsecase
	}
)

func NewQuestionBankHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.QuestionBankUsecase) QuestionBankHandler {
	return &questionBankHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// GET /banks
func (h *questionBankHandler) ListBanks(ctx *fiber.Ctx) error {
	banks, err := h.usecase.ListBanks(ctx.UserContext())
	if err != nil {
		return response.NewFailed(domain.BANK_LIST_FAILED, httpError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.BANK_LIST_SUCCESS, banks, nil).Send(ctx)
}

// GET /banks/last-used
func (h *questionBankHandler) GetLastUsed(ctx *fiber.Ctx) error {
	bank, err := h.usecase.GetLastUsedBank(ctx.UserContext())
	if err != nil {
		return response.NewFailed(domain.BANK_LAST_USED_FAILED, httpError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.BANK_LAST_USED_SUCCESS, bank, nil).Send(ctx)
}

// PUT /banks/:bank_id/last-used
func (h *questionBankHandler) SetLastUsed(ctx *fiber.Ctx) error {
	bankID, err := paramID(ctx, "bank_id")
	if err != nil {
		return response.NewFailed(domain.BANK_SET_LAST_USED_FAILED, err, h.logger).Send(ctx)
	}
	if err := h.usecase.SetLastUsedBank(ctx.UserContext(), bankID); err != nil {
		return response.NewFailed(domain.BANK_SET_LAST_USED_FAILED, httpError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.BANK_SET_LAST_USED_SUCCESS, fiber.Map{"bank_id": bankID}, nil).Send(ctx)
}

// GET /banks/:bank_id/wrong
func (h *questionBankHandler) ListWrong(ctx *fiber.Ctx) error {
	bankID, err := paramID(ctx, "bank_id")
	if err != nil {
		return response.NewFailed(domain.WRONG_LIST_FAILED, err, h.logger).Send(ctx)
	}
	items, err := h.usecase.ListWrongQuestions(ctx.UserContext(), bankID)
	if err != nil {
		return response.NewFailed(domain.WRONG_LIST_FAILED, httpError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.WRONG_LIST_SUCCESS, items, fiber.Map{"total": len(items)}).Send(ctx)
}

// DELETE /banks/:bank_id/wrong/:question_id
func (h *questionBankHandler) RemoveWrong(ctx *fiber.Ctx) error {
	bankID, err := paramID(ctx, "bank_id")
	if err != nil {
		return response.NewFailed(domain.WRONG_REMOVE_FAILED, err, h.logger).Send(ctx)
	}
	questionID, err := paramID(ctx, "question_id")
	if err != nil {
		return response.NewFailed(domain.WRONG_REMOVE_FAILED, err, h.logger).Send(ctx)
	}
	if err := h.usecase.RemoveWrongQuestion(ctx.UserContext(), bankID, questionID); err != nil {
		return response.NewFailed(domain.WRONG_REMOVE_FAILED, httpError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.WRONG_REMOVE_SUCCESS, nil, nil).Send(ctx)
}

// GET /exam-config
func (h *questionBankHandler) GetExamConfig(ctx *fiber.Ctx) error {
	counts, err := h.usecase.GetExamConfig(ctx.UserContext())
	if err != nil {
		return response.NewFailed(domain.EXAM_CONFIG_GET_FAILED, httpError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.EXAM_CONFIG_GET_SUCCESS, counts, nil).Send(ctx)
}

// PUT /exam-config
func (h *questionBankHandler) UpdateExamConfig(ctx *fiber.Ctx) error {
	var req entity.ExamCounts
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.EXAM_CONFIG_UPDATE_FAILED, httpError(err), h.logger).Send(ctx)
	}
	counts, err := h.usecase.UpdateExamConfig(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.EXAM_CONFIG_UPDATE_FAILED, httpError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.EXAM_CONFIG_UPDATE_SUCCESS, counts, nil).Send(ctx)
}
