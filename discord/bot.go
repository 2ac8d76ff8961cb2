// Package discord runs the question answering Discord bot.
package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/wikidex/wikidex"
)

// Discord caps messages at 2000 characters; chunks stay below that to
// leave room for the part prefix.
const maxMessageLen = 1900

const helpCommand = "!wikihelp"

const helpText = "Mention me with a question about the wiki, or send me a DM. " +
	"I answer using the scraped wiki content only."

// Bot answers questions when mentioned in a channel or messaged
// directly. Answers longer than the Discord message limit are split
// into numbered chunks.
type Bot struct {
	session *discordgo.Session
	asker   wikidex.Asker
	logger  *slog.Logger
}

// New creates a Bot for the given bot token. The session is not opened
// until Open is called.
func New(token string, asker wikidex.Asker, logger *slog.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	if logger == nil {
		logger = slog.Default()
	}

	b := &Bot{session: session, asker: asker, logger: logger}
	session.AddHandler(b.onMessageCreate)
	return b, nil
}

// Open connects the bot to the Discord gateway.
func (b *Bot) Open() error {
	return b.session.Open()
}

// Close disconnects the bot.
func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID || m.Author.Bot {
		return
	}

	content := strings.TrimSpace(m.Content)
	if content == helpCommand {
		b.send(s, m.ChannelID, helpText)
		return
	}

	if !b.addressed(s, m) {
		return
	}

	question := strings.TrimSpace(stripMention(content, s.State.User.ID))
	if question == "" {
		b.send(s, m.ChannelID, "Ask me a question about the wiki.")
		return
	}

	// Show the typing indicator while the model generates an answer.
	_ = s.ChannelTyping(m.ChannelID)

	answer, err := b.asker.Ask(context.Background(), question)
	if err != nil {
		b.logger.Error("ask failed", "question", question, "error", err)
		if wikidex.ErrorCode(err) == wikidex.ENOTFOUND {
			b.send(s, m.ChannelID, "The wiki index is empty. Run a scrape first.")
		} else {
			b.send(s, m.ChannelID, "Sorry, something went wrong answering that.")
		}
		return
	}

	chunks := SplitMessage(answer, maxMessageLen)
	for i, chunk := range chunks {
		if len(chunks) > 1 {
			chunk = fmt.Sprintf("(%d/%d) %s", i+1, len(chunks), chunk)
		}
		b.send(s, m.ChannelID, chunk)
	}
}

// addressed reports whether the message is directed at the bot: any
// direct message, or a channel message that mentions it.
func (b *Bot) addressed(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	if m.GuildID == "" {
		return true
	}
	for _, u := range m.Mentions {
		if u.ID == s.State.User.ID {
			return true
		}
	}
	return false
}

func (b *Bot) send(s *discordgo.Session, channelID, msg string) {
	if _, err := s.ChannelMessageSend(channelID, msg); err != nil {
		b.logger.Error("send failed", "channel", channelID, "error", err)
	}
}

// stripMention removes the bot's mention tags from the message content.
func stripMention(content, botID string) string {
	for _, tag := range []string{"<@" + botID + ">", "<@!" + botID + ">"} {
		content = strings.ReplaceAll(content, tag, "")
	}
	return content
}

// SplitMessage splits text into chunks of at most limit bytes,
// preferring to break at newline boundaries. Chunks are trimmed and
// never empty.
func SplitMessage(text string, limit int) []string {
	text = strings.TrimSpace(text)
	if limit <= 0 || len(text) <= limit {
		if text == "" {
			return nil
		}
		return []string{text}
	}

	var chunks []string
	for len(text) > limit {
		cut := strings.LastIndex(text[:limit], "\n")
		if cut <= 0 {
			cut = limit
			// Back up so the cut never lands inside a multibyte rune.
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
			if cut == 0 {
				cut = limit
			}
		}
		chunk := strings.TrimSpace(text[:cut])
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		text = strings.TrimSpace(text[cut:])
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
