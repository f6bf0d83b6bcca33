package handler

import (
	"errors"

	"github.com/evandrarf/quizdrill/internal/delivery/http/domain"
	"github.com/evandrarf/quizdrill/internal/delivery/http/entity"
	"github.com/evandrarf/quizdrill/internal/delivery/http/usecase"
	"github.com/evandrarf/quizdrill/internal/pkg/response"
	"github.com/evandrarf/quizdrill/internal/pkg/validate"
	"github.com/evandrarf/quizdrill/internal/practice"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	SessionHandler interface {
		Start(ctx *fiber.Ctx) error
		Get(ctx *fiber.Ctx) error
		Navigate(ctx *fiber.Ctx) error
		Jump(ctx *fiber.Ctx) error
		Answer(ctx *fiber.Ctx) error
		Reveal(ctx *fiber.Ctx) error
		Advance(ctx *fiber.Ctx) error
		Unanswered(ctx *fiber.Ctx) error
		Submit(ctx *fiber.Ctx) error
		MarkWrong(ctx *fiber.Ctx) error
		End(ctx *fiber.Ctx) error
	}

	sessionHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.SessionUsecase
	}
)

func NewSessionHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.SessionUsecase) SessionHandler {
	return &sessionHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /banks/:bank_id/sessions
func (h *sessionHandler) Start(ctx *fiber.Ctx) error {
	bankID, err := paramID(ctx, "bank_id")
	if err != nil {
		return response.NewFailed(domain.SESSION_START_FAILED, err, h.logger).Send(ctx)
	}

	var req entity.StartSessionRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.SESSION_START_FAILED, httpError(err), h.logger).Send(ctx)
	}

	session, err := h.usecase.StartSession(ctx.UserContext(), bankID, req)
	if errors.Is(err, practice.ErrReshuffleDecisionRequired) {
		res := response.NewFailed(domain.SESSION_RESHUFFLE_DECISION, httpError(err), h.logger)
		res.Data = fiber.Map{"decision": entity.DecisionReshuffle}
		return res.Send(ctx)
	}
	if err != nil {
		return response.NewFailed(domain.SESSION_START_FAILED, httpError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.SESSION_START_SUCCESS, session, nil).Status(fiber.StatusCreated).Send(ctx)
}

// GET /sessions/:session_id
func (h *sessionHandler) Get(ctx *fiber.Ctx) error {
	session, err := h.usecase.GetSession(ctx.UserContext(), ctx.Params("session_id"))
	if err != nil {
		return response.NewFailed(domain.SESSION_GET_FAILED, httpError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.SESSION_GET_SUCCESS, session, nil).Send(ctx)
}

// POST /sessions/:session_id/navigate
func (h *sessionHandler) Navigate(ctx *fiber.Ctx) error {
	var req entity.NavigateRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.SESSION_NAVIGATE_FAILED, httpError(err), h.logger).Send(ctx)
	}
	session, err := h.usecase.Navigate(ctx.UserContext(), ctx.Params("session_id"), req.Delta)
	if err != nil {
		return response.NewFailed(domain.SESSION_NAVIGATE_FAILED, httpError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.SESSION_NAVIGATE_SUCCESS, session, nil).Send(ctx)
}

// POST /sessions/:session_id/jump
func (h *sessionHandler) Jump(ctx *fiber.Ctx) error {
	var req entity.JumpRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.SESSION_NAVIGATE_FAILED, httpError(err), h.logger).Send(ctx)
	}
	session, err := h.usecase.Jump(ctx.UserContext(), ctx.Params("session_id"), *req.Index)
	if err != nil {
		return response.NewFailed(domain.SESSION_NAVIGATE_FAILED, httpError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.SESSION_NAVIGATE_SUCCESS, session, nil).Send(ctx)
}

// POST /sessions/:session_id/answer
func (h *sessionHandler) Answer(ctx *fiber.Ctx) error {
	var req entity.AnswerRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.SESSION_ANSWER_FAILED, httpError(err), h.logger).Send(ctx)
	}
	session, err := h.usecase.Answer(ctx.UserContext(), ctx.Params("session_id"), req)
	if err != nil {
		return response.NewFailed(domain.SESSION_ANSWER_FAILED, httpError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.SESSION_ANSWER_SUCCESS, session, nil).Send(ctx)
}

// POST /sessions/:session_id/reveal
func (h *sessionHandler) Reveal(ctx *fiber.Ctx) error {
	var req entity.RevealRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.SESSION_REVEAL_FAILED, httpError(err), h.logger).Send(ctx)
	}
	result, err := h.usecase.Reveal(ctx.UserContext(), ctx.Params("session_id"), req)
	if err != nil {
		return response.NewFailed(domain.SESSION_REVEAL_FAILED, httpError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.SESSION_REVEAL_SUCCESS, result, nil).Send(ctx)
}

// POST /sessions/:session_id/advance
func (h *sessionHandler) Advance(ctx *fiber.Ctx) error {
	result, err := h.usecase.Advance(ctx.UserContext(), ctx.Params("session_id"))
	if err != nil {
		return response.NewFailed(domain.SESSION_ADVANCE_FAILED, httpError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.SESSION_ADVANCE_SUCCESS, result, nil).Send(ctx)
}

// GET /sessions/:session_id/unanswered
func (h *sessionHandler) Unanswered(ctx *fiber.Ctx) error {
	result, err := h.usecase.Unanswered(ctx.UserContext(), ctx.Params("session_id"))
	if err != nil {
		return response.NewFailed(domain.SESSION_UNANSWERED_FAILED, httpError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.SESSION_UNANSWERED_SUCCESS, result, nil).Send(ctx)
}

// POST /sessions/:session_id/submit
func (h *sessionHandler) Submit(ctx *fiber.Ctx) error {
	var req entity.SubmitRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.SESSION_SUBMIT_FAILED, httpError(err), h.logger).Send(ctx)
	}
	result, err := h.usecase.Submit(ctx.UserContext(), ctx.Params("session_id"), req)
	if err != nil {
		return response.NewFailed(domain.SESSION_SUBMIT_FAILED, httpError(err), h.logger).Send(ctx)
	}
	msg := domain.SESSION_SUBMIT_SUCCESS
	if !result.Submitted {
		msg = domain.SESSION_SUBMIT_CONFIRM
	}
	return response.NewSuccess(msg, result, nil).Send(ctx)
}

// POST /sessions/:session_id/mark-wrong
func (h *sessionHandler) MarkWrong(ctx *fiber.Ctx) error {
	result, err := h.usecase.MarkWrong(ctx.UserContext(), ctx.Params("session_id"))
	if err != nil {
		return response.NewFailed(domain.SESSION_MARK_WRONG_FAILED, httpError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.SESSION_MARK_WRONG_SUCCESS, result, nil).Send(ctx)
}

// DELETE /sessions/:session_id
func (h *sessionHandler) End(ctx *fiber.Ctx) error {
	if err := h.usecase.EndSession(ctx.UserContext(), ctx.Params("session_id")); err != nil {
		return response.NewFailed(domain.SESSION_END_FAILED, httpError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.SESSION_END_SUCCESS, nil, nil).Send(ctx)
}
