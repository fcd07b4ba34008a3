package notification

import (
	"context"
	"fmt"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, chat notifications disabled")
		return &TelegramNotifier{logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, user *domain.User, booking *domain.Booking) {
	n.send(ctx, user, bookingConfirmedText(booking))
}

func (n *TelegramNotifier) NotifyPaymentRecorded(ctx context.Context, user *domain.User, payment *domain.Payment) {
	n.send(ctx, user, paymentRecordedText(payment))
}

func bookingConfirmedText(b *domain.Booking) string {
	decorator := "to be assigned"
	if b.Decorator != nil && *b.Decorator != "" {
		decorator = *b.Decorator
	}

	return fmt.Sprintf(
		"*Booking confirmed!*\n\n"+"Service: %s\n"+"Date: %s\n"+"Location: %s\n"+"Decorator: %s",
		b.ServiceName, b.BookingDate, b.Location, decorator,
	)
}

func paymentRecordedText(p *domain.Payment) string {
	return fmt.Sprintf(
		"*Payment received*\n\n"+"Amount: %.2f\n"+"Transaction: %s\n"+"Your booking is now confirmed.",
		p.Price, p.TransactionID,
	)
}

func (n *TelegramNotifier) send(ctx context.Context, user *domain.User, text string) {
	if n.bot == nil {
		n.logger.LogAttrs(ctx, logger.DebugLevel, "notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if user == nil || user.TelegramChatID == nil {
		n.logger.LogAttrs(ctx, logger.DebugLevel, "notification skipped (no chat_id)", logger.String("text", text))
		return
	}
	chatID := *user.TelegramChatID

	if err := ctx.Err(); err != nil {
		n.logger.LogAttrs(ctx, logger.DebugLevel, "notification skipped (context cancelled)", logger.Int64("chat_id", chatID))
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to send telegram notification",
			logger.Int64("chat_id", chatID),
			logger.String("error", err.Error()),
		)
	}
}
