package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/croveer/minesweeper-gen/internal/mines"
)

// Discord rejects messages longer than this.
const messageBudget = 2000

type bot struct {
	log    *logrus.Logger
	prefix string
}

// parseCommand reads an optional "rows cols mines" triple after the
// command prefix. The chat boards always open with a revealed zero
// region when one exists.
func parseCommand(args []string) (mines.Params, error) {
	params := mines.DefaultParams()
	params.RevealFirst = true

	if len(args) == 0 {
		return params, nil
	}
	if len(args) != 3 {
		return params, errors.New("expected either no arguments or: rows cols mines")
	}

	var err error
	if params.Rows, err = strconv.Atoi(args[0]); err != nil {
		return params, fmt.Errorf("bad row count %q", args[0])
	}
	if params.Cols, err = strconv.Atoi(args[1]); err != nil {
		return params, fmt.Errorf("bad column count %q", args[1])
	}
	if params.Mines, err = strconv.Atoi(args[2]); err != nil {
		return params, fmt.Errorf("bad mine count %q", args[2])
	}
	return params, nil
}

func (b *bot) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.Bot {
		return
	}

	fields := strings.Fields(m.Content)
	if len(fields) == 0 || fields[0] != b.prefix {
		return
	}

	params, err := parseCommand(fields[1:])
	if err != nil {
		b.reply(s, m, fmt.Sprintf("%s — usage: `%s [rows cols mines]`", err, b.prefix))
		return
	}

	res, err := mines.NewGenerator(params).Start(nil)
	if errors.Is(err, mines.ErrUnplayable) {
		b.reply(s, m, "that board would be more mine than board, try fewer mines")
		return
	}

	text := res.Plain()
	if len(text) > messageBudget {
		b.reply(s, m, "that board would not fit in a message, try a smaller one")
		return
	}

	b.log.WithFields(logrus.Fields{
		"rows": params.Rows, "cols": params.Cols, "mines": params.Mines,
		"channel": m.ChannelID,
	}).Info("posting board")

	b.reply(s, m, text)
}

func (b *bot) reply(s *discordgo.Session, m *discordgo.MessageCreate, text string) {
	if _, err := s.ChannelMessageSend(m.ChannelID, text); err != nil {
		b.log.Error("unable to send message: ", err)
	}
}
