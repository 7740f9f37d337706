package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/filmotheque/filmotheque/internal/catalog"
)

const (
	unauthorizedMsg = "Désolé, ce bot ne vous est pas ouvert."
	errorMsg        = "Le catalogue ne répond pas. Réessayez plus tard."
	welcomeMsg      = "Bienvenue sur Filmothèque !\n" +
		"/best — le meilleur film\n" +
		"/genres — choisir un genre\n" +
		"/top [genre] — les films les mieux notés"

	genreCallbackPrefix = "genre:" // inline keyboard genre selection
	movieCallbackPrefix = "movie:" // inline keyboard details request

	maxButtonLabel = 30 // max characters in inline keyboard button label
)

// handleMessage processes an incoming text message.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	b.logger.Debug("received message", slog.Int64("chat_id", chatID))

	if !b.sessions.isAllowed(chatID) {
		b.sendText(chatID, unauthorizedMsg)
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	cmd, arg := text, ""
	if i := strings.IndexByte(text, ' '); i > 0 {
		cmd, arg = text[:i], strings.TrimSpace(text[i+1:])
	}

	switch cmd {
	case "/start", "/help":
		b.sendText(chatID, welcomeMsg)
	case "/genres":
		b.replyGenres(ctx, chatID)
	case "/best":
		b.replyBest(ctx, chatID)
	case "/top":
		genre := arg
		if genre == "" {
			genre = b.sessions.selectedGenre(chatID)
		}
		b.replyListing(ctx, chatID, genre)
	default:
		b.sendText(chatID, welcomeMsg)
	}
}

// handleCallback processes inline keyboard callback queries.
func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID

	b.logger.Debug("received callback",
		slog.Int64("chat_id", chatID),
		slog.String("data", cq.Data),
	)

	// Acknowledge the callback immediately.
	callback := tgbotapi.NewCallback(cq.ID, "")
	b.api.Send(callback) //nolint:errcheck // best-effort ack

	if !b.sessions.isAllowed(chatID) {
		return
	}

	switch {
	case strings.HasPrefix(cq.Data, genreCallbackPrefix):
		genre := strings.TrimPrefix(cq.Data, genreCallbackPrefix)
		b.sessions.selectGenre(chatID, genre)
		b.replyListing(ctx, chatID, genre)

	case strings.HasPrefix(cq.Data, movieCallbackPrefix):
		raw := strings.TrimPrefix(cq.Data, movieCallbackPrefix)
		id, err := strconv.Atoi(raw)
		if err != nil {
			b.logger.Warn("malformed movie callback", slog.String("data", cq.Data))
			return
		}
		b.replyDetail(ctx, chatID, id)
	}
}

// replyGenres sends the genre list as an inline keyboard.
func (b *Bot) replyGenres(ctx context.Context, chatID int64) {
	genres := b.client.AllGenres(ctx)
	if len(genres) == 0 {
		b.sendText(chatID, errorMsg)
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, g := range genres {
		label := g.Name
		if len(label) > maxButtonLabel {
			label = label[:maxButtonLabel] + "…"
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, genreCallbackPrefix+g.Name),
		))
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)

	b.sendMarkdown(chatID, FormatBold("Choisissez un genre"), &kb)
}

// replyBest sends the best-movie banner: detail text plus poster.
func (b *Bot) replyBest(ctx context.Context, chatID int64) {
	detail, err := b.client.BestMovie(ctx)
	if err != nil {
		b.logger.Warn("best movie unavailable", slog.String("error", err.Error()))
		b.sendText(chatID, errorMsg)
		return
	}

	b.sendPoster(chatID, detail.ImageURL, detail.Title)
	b.sendMarkdown(chatID, FormatDetail(detail), nil)
}

// replyListing sends one category listing with a details button per movie.
func (b *Bot) replyListing(ctx context.Context, chatID int64, genre string) {
	q := catalog.TopRated()
	title := "Films les mieux notés"
	if genre != "" {
		q = catalog.ByGenre(genre)
		title = genre
	}

	movies, err := b.client.Movies(ctx, b.listSize, q)
	if err != nil {
		b.logger.Warn("listing unavailable",
			slog.String("genre", genre),
			slog.String("error", err.Error()),
		)
		b.sendText(chatID, errorMsg)
		return
	}
	if len(movies) == 0 {
		b.sendText(chatID, "Aucun film trouvé.")
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for i, m := range movies {
		label := fmt.Sprintf("%d. %s", i+1, m.Title)
		if len(label) > maxButtonLabel {
			label = label[:maxButtonLabel] + "…"
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, movieCallbackPrefix+strconv.Itoa(m.ID)),
		))
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)

	b.sendMarkdown(chatID, FormatMovieList(title, movies), &kb)
}

// replyDetail sends one movie's full record.
func (b *Bot) replyDetail(ctx context.Context, chatID int64, id int) {
	detail, err := b.client.Title(ctx, id)
	if err != nil {
		b.logger.Warn("detail unavailable",
			slog.Int("id", id),
			slog.String("error", err.Error()),
		)
		b.sendText(chatID, errorMsg)
		return
	}

	b.sendPoster(chatID, detail.ImageURL, detail.Title)
	b.sendMarkdown(chatID, FormatDetail(detail), nil)
}
