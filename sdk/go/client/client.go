// Package client implements the bot side of the judge protocol: it reads one
// world snapshot per tick from stdin and writes one turn batch per tick to
// stdout. Each message is a single JSON line followed by a sentinel "." line.
//
// The client is synchronous and not safe for concurrent use. Reads and writes
// strictly alternate, starting with a read.
package client

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/zeusync/proboj/internal/core/observability/log"
	"github.com/zeusync/proboj/sdk/go/models"
	"github.com/zeusync/proboj/sdk/go/turn"
)

// Sentinel terminates every message in both directions.
const Sentinel = "."

const readBufferSize = 64 * 1024

// Bot decides the turns for one tick.
type Bot interface {
	Turn(state *models.Snapshot) []turn.Turn
}

// BotFunc adapts a function to the Bot interface.
type BotFunc func(state *models.Snapshot) []turn.Turn

func (f BotFunc) Turn(state *models.Snapshot) []turn.Turn { return f(state) }

type phase uint8

const (
	phaseRead phase = iota
	phaseWrite
)

// Client represents the judge connection of one bot process
type Client struct {
	reader *bufio.Reader
	writer *bufio.Writer

	phase  phase
	round  int
	digest uint64

	session string
	config  Config
	logger  log.Log
}

// New creates a client reading states from r and writing turns to w. A nil
// logger is replaced by one built from config.Log.
func New(r io.Reader, w io.Writer, config Config, logger log.Log) *Client {
	if logger == nil {
		logger = log.NewWithConfig(config.Log)
	}

	session := uuid.NewString()
	return &Client{
		reader:  bufio.NewReaderSize(r, readBufferSize),
		writer:  bufio.NewWriter(w),
		phase:   phaseRead,
		session: session,
		config:  config,
		logger:  logger.With(log.String("component", "client"), log.String("session", session)),
	}
}

// NewStdio creates a client on the process's stdin and stdout.
func NewStdio(config Config, logger log.Log) *Client {
	return New(os.Stdin, os.Stdout, config, logger)
}

// Session returns the random id tagging this client's log lines.
func (c *Client) Session() string {
	return c.session
}

// Digest returns the xxhash64 of the last state line read.
func (c *Client) Digest() uint64 {
	return c.digest
}

// ReadState blocks until a full state message is available and returns the
// decoded snapshot. If the judge closed the stream before the message began
// the returned error matches io.EOF as well as ErrProtocolViolation.
func (c *Client) ReadState() (*models.Snapshot, error) {
	if c.phase != phaseRead {
		return nil, protocolViolation("state requested before the previous turns were sent", nil)
	}

	line, err := c.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, protocolViolation("input closed", io.EOF)
		}
		return nil, protocolViolation("failed to read state line", err)
	}

	sentinel, err := c.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, protocolViolation("failed to read sentinel line", err)
	}
	if string(sentinel) != Sentinel {
		return nil, protocolViolation(fmt.Sprintf("expected sentinel %q, got %q", Sentinel, abbreviate(sentinel)), nil).
			WithContext("round", c.round)
	}

	start := time.Now()
	digest := xxhash.Sum64(line)
	state, err := ParseState(line)
	if err != nil {
		var clientErr *Error
		if errors.As(err, &clientErr) {
			clientErr.WithContext("digest", digest).WithContext("bytes", len(line))
		}
		return nil, err
	}

	c.digest = digest
	c.round = state.Round
	c.phase = phaseWrite

	c.logger.Debug("State received",
		log.Int("round", state.Round),
		log.Int("ships", len(state.Ships)),
		log.Int("asteroids", len(state.Asteroids)),
		log.Int("wormholes", len(state.Wormholes)),
		log.Int("players", len(state.Players)),
		log.Int("bytes", len(line)),
		log.Uint64("digest", c.digest),
		log.Duration("decode_time", time.Since(start)))

	return state, nil
}

// SendTurns writes the batch for the current tick followed by the sentinel
// line and flushes the output. Turns are sent exactly as given.
func (c *Client) SendTurns(turns []turn.Turn) error {
	if c.phase != phaseWrite {
		return protocolViolation("turns sent before a state was read", nil)
	}

	data, err := turn.Encode(turns)
	if err != nil {
		return fmt.Errorf("failed to encode turns for round %d: %w", c.round, err)
	}

	if _, err = c.writer.Write(data); err == nil {
		_, err = c.writer.WriteString("\n" + Sentinel + "\n")
	}
	if err == nil {
		err = c.writer.Flush()
	}
	if err != nil {
		return fmt.Errorf("failed to write turns for round %d: %w", c.round, err)
	}

	c.phase = phaseRead
	c.logger.Debug("Turns sent", log.Int("round", c.round), log.Int("turns", len(turns)))
	return nil
}

// Loop runs the read, decide, write cycle until the judge closes the input
// at a message boundary, which ends the loop with a nil error.
func (c *Client) Loop(bot Bot) error {
	c.logger.Info("Bot loop started")
	for {
		state, err := c.ReadState()
		if err != nil {
			if errors.Is(err, io.EOF) {
				c.logger.Info("Input closed, stopping", log.Int("round", c.round))
				return nil
			}
			return err
		}

		start := time.Now()
		turns := bot.Turn(state)
		elapsed := time.Since(start)

		if err = c.SendTurns(turns); err != nil {
			return err
		}
		c.logger.Debug("Tick finished", log.Int("round", state.Round), log.Duration("think_time", elapsed))
	}
}

// Run is Loop for main functions: any error is logged as fatal and the
// process exits with status 1.
func (c *Client) Run(bot Bot) {
	if err := c.Loop(bot); err != nil {
		var clientErr *Error
		if errors.As(err, &clientErr) {
			c.logger.Fatal("Bot stopped", log.Int("code", int(clientErr.Code)), log.Any("context", clientErr.Context), log.Error(err))
		}
		c.logger.Fatal("Bot stopped", log.Error(err))
	}
	_ = c.logger.Sync()
}

// readLine returns the next line without its "\n" or "\r\n" terminator. A
// final line that lacks a terminator is returned as is.
func (c *Client) readLine() ([]byte, error) {
	line, err := c.reader.ReadBytes('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return nil, err
	}
	if c.config.MaxMessageSize > 0 && len(line) > c.config.MaxMessageSize {
		return nil, fmt.Errorf("line of %d bytes exceeds max message size %d", len(line), c.config.MaxMessageSize)
	}

	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return line, nil
}

func abbreviate(b []byte) string {
	const limit = 32
	if len(b) > limit {
		return string(b[:limit]) + "..."
	}
	return string(b)
}
