package telegram

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/cinescout/cinescout/internal/metadata/tmdb"
)

const (
	unauthorizedMsg = "Sorry, you are not authorized to use this bot."
	errorMsg        = "An error occurred while processing your request. Please try again."
	noResultsMsg    = "No movies found."
	welcomeMsg      = "Welcome to CineScout! Send a movie title to search, " +
		"or use /trending for this week's trending movies."

	detailPrefix = "det:" // prefix for detail-selection callback data

	maxButtonLabel = 30 // max characters in inline keyboard button label
)

// handleMessage processes an incoming text message.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	b.logger.Debug("received message",
		slog.Int64("user_id", userID),
	)

	if !b.access.isAllowed(userID) {
		b.sendText(chatID, unauthorizedMsg)
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	switch {
	case text == "/start", text == "/help":
		b.sendText(chatID, welcomeMsg)

	case text == "/trending":
		b.sendTrending(ctx, chatID)

	case strings.HasPrefix(text, "/search"):
		query := strings.TrimSpace(strings.TrimPrefix(text, "/search"))
		b.sendSearch(ctx, chatID, query)

	case strings.HasPrefix(text, "/movie"):
		arg := strings.TrimSpace(strings.TrimPrefix(text, "/movie"))
		id, err := strconv.Atoi(arg)
		if err != nil {
			b.sendText(chatID, "Usage: /movie <tmdb id>")
			return
		}
		b.sendDetails(ctx, chatID, id)

	case strings.HasPrefix(text, "/"):
		b.sendText(chatID, "Unknown command. Try /trending, /search <title> or /movie <id>.")

	default:
		// Bare text is treated as a search query.
		b.sendSearch(ctx, chatID, text)
	}
}

// handleCallback processes inline keyboard callback queries ("det:<id>").
func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	userID := cq.From.ID
	chatID := cq.Message.Chat.ID

	b.logger.Debug("received callback",
		slog.Int64("user_id", userID),
		slog.String("data", cq.Data),
	)

	// Acknowledge the callback immediately.
	callback := tgbotapi.NewCallback(cq.ID, "")
	b.api.Send(callback) //nolint:errcheck // best-effort ack

	if !b.access.isAllowed(userID) {
		return
	}

	if !strings.HasPrefix(cq.Data, detailPrefix) {
		return
	}
	id, err := strconv.Atoi(strings.TrimPrefix(cq.Data, detailPrefix))
	if err != nil {
		return
	}

	b.sendDetails(ctx, chatID, id)
}

// sendSearch runs a title search and replies with a numbered result list
// plus a selection keyboard. A blank query never hits the network.
func (b *Bot) sendSearch(ctx context.Context, chatID int64, query string) {
	if strings.TrimSpace(query) == "" {
		b.sendText(chatID, "Usage: /search <movie title>")
		return
	}

	b.sendTyping(chatID)

	movies, err := b.provider.SearchMovies(ctx, query)
	if err != nil {
		b.logger.Error("search failed",
			slog.String("query", query),
			slog.String("error", err.Error()),
		)
		b.sendText(chatID, errorMsg)
		return
	}
	if len(movies) == 0 {
		b.sendText(chatID, noResultsMsg)
		return
	}

	b.sendMovieList(chatID, "Search results for "+query, movies)
}

// sendTrending replies with this week's trending movies.
func (b *Bot) sendTrending(ctx context.Context, chatID int64) {
	b.sendTyping(chatID)

	movies, err := b.provider.TrendingWeek(ctx)
	if err != nil {
		b.logger.Error("trending failed", slog.String("error", err.Error()))
		b.sendText(chatID, errorMsg)
		return
	}
	if len(movies) == 0 {
		b.sendText(chatID, noResultsMsg)
		return
	}

	b.sendMovieList(chatID, "Trending this week", movies)
}

// sendDetails fetches full details and replies with the poster (when the
// movie has one) and a formatted summary.
func (b *Bot) sendDetails(ctx context.Context, chatID int64, id int) {
	b.sendTyping(chatID)

	details, err := b.provider.MovieDetails(ctx, id)
	if err != nil {
		b.logger.Error("details failed",
			slog.Int("movie_id", id),
			slog.String("error", err.Error()),
		)
		b.sendText(chatID, errorMsg)
		return
	}

	b.sendPoster(chatID, details.PosterPath, details.Title)

	msg := tgbotapi.NewMessage(chatID, FormatDetails(details))
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Warn("failed to send markdown, retrying plain",
			slog.String("error", err.Error()),
		)
		b.sendText(chatID, FormatDetailsPlain(details))
	}
}

// sendMovieList sends a numbered movie list with a selection keyboard.
func (b *Bot) sendMovieList(chatID int64, title string, movies []tmdb.Movie) {
	msg := tgbotapi.NewMessage(chatID, FormatMovieList(title, movies))
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.ReplyMarkup = buildDetailKeyboard(movies)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Warn("failed to send markdown, retrying plain",
			slog.String("error", err.Error()),
		)
		plain := tgbotapi.NewMessage(chatID, FormatMovieListPlain(title, movies))
		plain.ReplyMarkup = buildDetailKeyboard(movies)
		if _, err := b.api.Send(plain); err != nil {
			b.logger.Error("failed to send movie list",
				slog.Int64("chat_id", chatID),
				slog.String("error", err.Error()),
			)
		}
	}
}

// sendText sends a plain text message (no parse mode).
func (b *Bot) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("failed to send message",
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()),
		)
	}
}

// sendTyping shows a typing indicator while a fetch is in flight.
func (b *Bot) sendTyping(chatID int64) {
	typing := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	b.api.Send(typing) //nolint:errcheck // best-effort typing indicator
}

// sendPoster sends a movie poster photo with a caption. Absent poster
// paths are skipped silently; Telegram fetches the CDN URL itself.
func (b *Bot) sendPoster(chatID int64, posterPath, caption string) {
	url := tmdb.PosterURL(posterPath, "w500")
	if url == "" {
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(url))
	photo.Caption = caption
	if _, err := b.api.Send(photo); err != nil {
		b.logger.Debug("failed to send poster",
			slog.String("url", url),
			slog.String("error", err.Error()),
		)
	}
}

// buildDetailKeyboard builds one selection button per movie, one row each.
// Callback data carries the TMDb ID.
func buildDetailKeyboard(movies []tmdb.Movie) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, m := range movies {
		label := m.Title
		if r := []rune(label); len(r) > maxButtonLabel {
			label = string(r[:maxButtonLabel]) + "…"
		}
		btn := tgbotapi.NewInlineKeyboardButtonData(
			strconv.Itoa(i+1)+". "+label,
			detailPrefix+strconv.Itoa(m.ID),
		)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(btn))
	}
	if len(rows) == 0 {
		return nil
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}
