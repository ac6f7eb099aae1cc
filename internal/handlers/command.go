// Package handlers connects inbound chat messages to the command router.
package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sangpham2710/rekbot/internal/commands"
	"github.com/sangpham2710/rekbot/internal/domain"
	"github.com/sangpham2710/rekbot/internal/embed"
)

// Sender delivers replies to a chat.
type Sender interface {
	SendMessage(chatID int64, text string) error
	SendEnvelope(chatID int64, env embed.Envelope) error
	// TypingLoop acknowledges the command while the reply is prepared.
	TypingLoop(chatID int64) func()
}

// Dispatcher runs one parsed invocation.
type Dispatcher interface {
	Dispatch(ctx context.Context, inv domain.CommandInvocation) (*commands.Response, error)
}

// CommandHandler parses a message, dispatches it and sends the single reply.
type CommandHandler struct {
	Router Dispatcher
	Sender Sender
	Logger *slog.Logger
}

// Handle processes one message. Non-command text and commands the router
// ignores produce no reply.
func (h *CommandHandler) Handle(ctx context.Context, chatID int64, userID int64, text string) {
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}

	inv, ok, err := commands.Parse(text)
	if !ok {
		return
	}
	logger = logger.With(
		"invocation_id", inv.ID,
		"chat_id", chatID,
		"user_id", userID,
	)

	if err != nil {
		h.rejectInvalid(chatID, inv, err, logger)
		return
	}

	if commands.Resolve(inv.Command, inv.Subcommand) == commands.RouteNone {
		logger.Debug("ignoring command", "command", inv.Command, "subcommand", inv.Subcommand)
		return
	}

	stopTyping := h.Sender.TypingLoop(chatID)
	resp, err := h.Router.Dispatch(ctx, inv)
	stopTyping()

	if err != nil {
		h.rejectInvalid(chatID, inv, err, logger)
		return
	}
	if resp == nil {
		return
	}

	switch {
	case resp.Envelope != nil:
		if err := h.Sender.SendEnvelope(chatID, *resp.Envelope); err != nil {
			logger.Error("failed to send envelope", "error", err)
			return
		}
		logger.Debug("sent envelope",
			"failed", resp.Envelope.Failed(),
			"fields", len(resp.Envelope.Fields),
		)
	case resp.Text != "":
		if err := h.Sender.SendMessage(chatID, resp.Text); err != nil {
			logger.Error("failed to send message", "error", err)
		}
	}
}

// rejectInvalid answers a command whose required arguments are missing with
// its usage line. Other errors are only logged.
func (h *CommandHandler) rejectInvalid(chatID int64, inv domain.CommandInvocation, err error, logger *slog.Logger) {
	if !errors.Is(err, domain.ErrValidation) {
		logger.Error("command error", "command", inv.Command, "error", err)
		return
	}

	logger.Info("rejected command", "command", inv.Command, "subcommand", inv.Subcommand, "error", err)
	usage := commands.Usage(inv.Command, inv.Subcommand)
	if usage == "" {
		return
	}
	if sendErr := h.Sender.SendMessage(chatID, usage); sendErr != nil {
		logger.Error("failed to send usage", "error", sendErr)
	}
}
