package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"github.com/five82/clueboard/internal/board"
	"github.com/five82/clueboard/internal/game"
)

const (
	sendBuffer = 64
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	maxMessage = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// session is one browser tab. It owns its own game, so tabs never share a
// board, and it is that game's Renderer: every call becomes a JSON message.
type session struct {
	conn   *websocket.Conn
	send   chan any
	game   *game.Game
	logger *slog.Logger
	ctx    context.Context
}

var _ game.Renderer = (*session)(nil)

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", slog.String("remote", realIP(r)), slog.String("error", err.Error()))
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	sess := &session{
		conn:   conn,
		send:   make(chan any, sendBuffer),
		game:   s.newGame(),
		logger: s.logger.With(slog.String("remote", realIP(r))),
		ctx:    ctx,
	}
	sess.logger.Info("session opened")

	go sess.writePump(cancel)
	sess.readPump()

	sess.logger.Info("session closed")
}

func (s *session) readPump() {
	defer func() { _ = s.conn.Close() }()

	s.conn.SetReadLimit(maxMessage)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg clientMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case typeStart:
			go s.start()
		case typeClick:
			s.game.ClickCell(msg.Cell, s)
		default:
			// ignore unknown types
		}
	}
}

func (s *session) writePump(cancel context.CancelFunc) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		cancel()
		_ = s.conn.Close()
	}()

	for {
		select {
		case msg := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-s.ctx.Done():
			_ = s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}

func (s *session) start() {
	err := s.game.Start(s.ctx, s)
	switch {
	case errors.Is(err, game.ErrBusy):
		s.logger.Debug("start ignored while loading")
	case err != nil && s.ctx.Err() != nil:
		s.logger.Debug("start abandoned", slog.String("error", err.Error()))
	}
}

// emit queues msg for the writer. It gives up once the session is closing.
func (s *session) emit(msg any) {
	select {
	case s.send <- msg:
	case <-s.ctx.Done():
	}
}

func (s *session) Clear() {
	s.emit(clearMessage{Type: typeClear})
}

func (s *session) SetLoading(loading bool) {
	s.emit(loadingMessage{Type: typeLoading, Loading: loading})
}

func (s *session) ShowError(err error) {
	s.emit(errorMessage{Type: typeError, Message: game.Describe(err)})
}

func (s *session) RenderHeaders(b *board.Board) {
	s.emit(headersMessage{Type: typeHeaders, Titles: b.Titles()})
}

func (s *session) RenderGrid(b *board.Board) {
	cats, clues := b.Size()
	s.emit(gridMessage{Type: typeGrid, Categories: cats, Clues: clues})
}

func (s *session) UpdateCell(id board.CellID, text string, state board.RevealState) {
	s.emit(cellMessage{Type: typeCell, Cell: id.String(), Text: text, Revealed: state.String()})
}
