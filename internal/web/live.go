package web

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/vitos/crypto_dash/internal/usecase"
	"go.uber.org/zap"
)

const (
	liveWriteWait  = 10 * time.Second
	livePongWait   = 60 * time.Second
	livePingPeriod = 54 * time.Second
	liveReadLimit  = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// liveCommand is a client input event. Absent fields are left unchanged.
type liveCommand struct {
	Limit   *int    `json:"limit,omitempty"`
	Filter  *string `json:"filter,omitempty"`
	Sort    *string `json:"sort,omitempty"`
	Refresh bool    `json:"refresh,omitempty"`
}

// liveMessage is pushed to the client after every state change.
type liveMessage struct {
	Session string                 `json:"session"`
	View    *usecase.HomeViewModel `json:"view,omitempty"`
	Notice  string                 `json:"notice,omitempty"`
}

// liveSession is one browser tab's list view.
type liveSession struct {
	id     string
	conn   *websocket.Conn
	view   *usecase.HomeView
	logger *zap.Logger

	writeMu sync.Mutex
}

func (s *Server) handleLiveHome(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	sess := &liveSession{
		id:     uuid.NewString(),
		conn:   conn,
		view:   usecase.NewHomeView(s.source, s.viewCfg),
		logger: s.logger,
	}
	sess.logger.Info("live session opened", zap.String("session", sess.id))

	sess.view.OnChange(sess.pushView)
	sess.pushView()

	done := make(chan struct{})
	go sess.pingLoop(done)
	sess.readLoop()

	close(done)
	sess.view.Close()
	conn.Close()
	sess.logger.Info("live session closed", zap.String("session", sess.id))
}

func (ls *liveSession) readLoop() {
	ls.conn.SetReadLimit(liveReadLimit)
	ls.conn.SetReadDeadline(time.Now().Add(livePongWait))
	ls.conn.SetPongHandler(func(string) error {
		return ls.conn.SetReadDeadline(time.Now().Add(livePongWait))
	})

	for {
		_, data, err := ls.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				ls.logger.Warn("live session read failed", zap.String("session", ls.id), zap.Error(err))
			}
			return
		}

		var cmd liveCommand
		if err := json.Unmarshal(data, &cmd); err != nil {
			ls.send(liveMessage{Session: ls.id, Notice: "malformed command"})
			continue
		}
		ls.apply(cmd)
	}
}

// apply handles one command. Filter and sort only re-render; limit and
// refresh go through the fetch lifecycle, which pushes on its own.
func (ls *liveSession) apply(cmd liveCommand) {
	if cmd.Filter != nil {
		ls.view.SetFilter(*cmd.Filter)
	}
	if cmd.Sort != nil {
		if err := ls.view.SetSort(*cmd.Sort); err != nil {
			ls.send(liveMessage{Session: ls.id, Notice: err.Error()})
		}
	}
	if cmd.Limit != nil {
		if err := ls.view.SetLimit(*cmd.Limit); err != nil {
			ls.send(liveMessage{Session: ls.id, Notice: err.Error()})
		}
	}
	if cmd.Refresh {
		ls.view.Refresh()
	}
	ls.pushView()
}

// pushView renders under the write lock so the last frame sent always
// reflects the latest state.
func (ls *liveSession) pushView() {
	ls.writeMu.Lock()
	defer ls.writeMu.Unlock()

	vm := ls.view.Render()
	ls.write(liveMessage{Session: ls.id, View: &vm})
}

func (ls *liveSession) send(msg liveMessage) {
	ls.writeMu.Lock()
	defer ls.writeMu.Unlock()
	ls.write(msg)
}

func (ls *liveSession) write(msg liveMessage) {
	ls.conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
	if err := ls.conn.WriteJSON(msg); err != nil {
		ls.logger.Debug("live session write failed", zap.String("session", ls.id), zap.Error(err))
	}
}

func (ls *liveSession) pingLoop(done <-chan struct{}) {
	ticker := time.NewTicker(livePingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ls.writeMu.Lock()
			err := ls.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(liveWriteWait))
			ls.writeMu.Unlock()
			if err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
