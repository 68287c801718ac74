// Package v1alpha1 exposes the game engine over an HTTP JSON API. It is
// a thin boundary: request decoding and validation here, all game rules
// in the session orchestrator.
package v1alpha1

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/berkingurcan/siglife-api/internal/clients/das"
	"github.com/berkingurcan/siglife-api/internal/entities/game"
	"github.com/berkingurcan/siglife-api/internal/errors"
	"github.com/berkingurcan/siglife-api/internal/orchestrators/session"
)

// Config holds the dependencies for the API handler
type Config struct {
	SessionService session.Service

	// DASClient is optional; badge listing endpoints return
	// errors.Unavailable when it is absent.
	DASClient das.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionService == nil {
		vb.RequiredField("SessionService")
	}

	return vb.Build()
}

// Handler serves the v1alpha1 HTTP API
type Handler struct {
	sessionService session.Service
	dasClient      das.Client
	validate       *validator.Validate
}

// NewHandler creates a new API handler with the provided dependencies
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		sessionService: cfg.SessionService,
		dasClient:      cfg.DASClient,
		validate:       validator.New(),
	}, nil
}

// RegisterRoutes mounts all v1alpha1 routes on the app
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/health", h.health)

	v1 := app.Group("/v1alpha1")

	v1.Get("/stages", h.listStages)
	v1.Get("/stages/:stageID/badge", h.getStageBadge)

	players := v1.Group("/players/:playerID")
	players.Get("/session", h.getSession)
	players.Post("/session", h.startNewGame)
	players.Delete("/session", h.resetGame)
	players.Get("/session/exists", h.hasSavedGame)
	players.Get("/history", h.getHistory)
	players.Post("/events/trigger", h.triggerRandomEvent)
	players.Post("/events/choice", h.makeChoice)
	players.Post("/events/dismiss", h.dismissEvent)
	players.Post("/stage/advance", h.advanceStage)
	players.Post("/mints", h.recordMint)

	v1.Get("/wallets/:address/badges", h.listWalletBadges)
}

func (h *Handler) health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "healthy",
	})
}

// stageView is the ladder entry shape returned by listStages
type stageView struct {
	game.Stage
	MintFeeLamports uint64 `json:"mintFeeLamports"`
}

func (h *Handler) listStages(c *fiber.Ctx) error {
	views := make([]stageView, len(game.Stages))
	for i, stage := range game.Stages {
		views[i] = stageView{
			Stage:           stage,
			MintFeeLamports: game.MintFeeForStage(stage.ID),
		}
	}
	return respondOK(c, views)
}

func (h *Handler) getStageBadge(c *fiber.Ctx) error {
	stageID := game.StageID(c.Params("stageID"))

	meta, err := game.BadgeMetadataForStage(stageID)
	if err != nil {
		return err
	}

	return respondOK(c, fiber.Map{
		"metadata":        meta,
		"mintFeeLamports": game.MintFeeForStage(stageID),
	})
}

func (h *Handler) getSession(c *fiber.Ctx) error {
	out, err := h.sessionService.GetSession(c.Context(), &session.GetSessionInput{
		PlayerID: c.Params("playerID"),
	})
	if err != nil {
		return err
	}

	return respondOK(c, fiber.Map{
		"state":        out.State,
		"canGraduate":  out.CanGraduate,
		"pendingEvent": out.PendingEvent,
	})
}

func (h *Handler) startNewGame(c *fiber.Ctx) error {
	out, err := h.sessionService.StartNewGame(c.Context(), &session.StartNewGameInput{
		PlayerID: c.Params("playerID"),
	})
	if err != nil {
		return err
	}

	return respondOK(c, out.State)
}

func (h *Handler) resetGame(c *fiber.Ctx) error {
	out, err := h.sessionService.ResetGame(c.Context(), &session.ResetGameInput{
		PlayerID: c.Params("playerID"),
	})
	if err != nil {
		return err
	}

	return respondOK(c, out.State)
}

func (h *Handler) hasSavedGame(c *fiber.Ctx) error {
	out, err := h.sessionService.HasSavedGame(c.Context(), &session.HasSavedGameInput{
		PlayerID: c.Params("playerID"),
	})
	if err != nil {
		return err
	}

	return respondOK(c, fiber.Map{"exists": out.Exists})
}

func (h *Handler) getHistory(c *fiber.Ctx) error {
	out, err := h.sessionService.GetSession(c.Context(), &session.GetSessionInput{
		PlayerID: c.Params("playerID"),
	})
	if err != nil {
		return err
	}

	return respondOK(c, fiber.Map{
		"entries": game.RecentFirst(out.State.History),
		"counts":  game.CountByType(out.State.History),
	})
}

func (h *Handler) triggerRandomEvent(c *fiber.Ctx) error {
	out, err := h.sessionService.TriggerRandomEvent(c.Context(), &session.TriggerRandomEventInput{
		PlayerID: c.Params("playerID"),
	})
	if err != nil {
		return err
	}

	return respondOK(c, out.Event)
}

// MakeChoiceRequest is the body of POST /events/choice
type MakeChoiceRequest struct {
	ChoiceID string `json:"choiceId" validate:"required"`
}

func (h *Handler) makeChoice(c *fiber.Ctx) error {
	var req MakeChoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidArgument("invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return errors.InvalidArgument("choiceId is required")
	}

	out, err := h.sessionService.MakeChoice(c.Context(), &session.MakeChoiceInput{
		PlayerID: c.Params("playerID"),
		ChoiceID: req.ChoiceID,
	})
	if err != nil {
		return err
	}

	return respondOK(c, fiber.Map{
		"state":          out.State,
		"outcome":        out.Outcome,
		"appliedChanges": out.AppliedChanges,
		"canGraduate":    out.CanGraduate,
	})
}

func (h *Handler) dismissEvent(c *fiber.Ctx) error {
	out, err := h.sessionService.DismissEvent(c.Context(), &session.DismissEventInput{
		PlayerID: c.Params("playerID"),
	})
	if err != nil {
		return err
	}

	return respondOK(c, fiber.Map{"dismissed": out.Dismissed})
}

func (h *Handler) advanceStage(c *fiber.Ctx) error {
	out, err := h.sessionService.AdvanceStage(c.Context(), &session.AdvanceStageInput{
		PlayerID: c.Params("playerID"),
	})
	if err != nil {
		return err
	}

	return respondOK(c, fiber.Map{
		"state":    out.State,
		"newStage": out.NewStage,
	})
}

// RecordMintRequest is the body of POST /mints
type RecordMintRequest struct {
	StageID     string `json:"stageId" validate:"required"`
	MintAddress string `json:"mintAddress"`
}

func (h *Handler) recordMint(c *fiber.Ctx) error {
	var req RecordMintRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidArgument("invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return errors.InvalidArgument("stageId is required")
	}

	out, err := h.sessionService.RecordMint(c.Context(), &session.RecordMintInput{
		PlayerID:    c.Params("playerID"),
		StageID:     game.StageID(req.StageID),
		MintAddress: req.MintAddress,
	})
	if err != nil {
		return err
	}

	return respondOK(c, fiber.Map{
		"state":         out.State,
		"alreadyMinted": out.AlreadyMinted,
	})
}

func (h *Handler) listWalletBadges(c *fiber.Ctx) error {
	if h.dasClient == nil {
		return errors.Unavailable("badge lookup is not configured")
	}

	out, err := h.dasClient.GetBadges(c.Context(), &das.GetBadgesInput{
		OwnerAddress: c.Params("address"),
	})
	if err != nil {
		return err
	}

	return respondOK(c, fiber.Map{"badges": out.Badges})
}
