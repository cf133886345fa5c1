// Package core implements the Console component, a lightweight hub between
// robot links and monitoring clients. It broadcasts decoded telemetry to
// websocket subscribers and routes control commands to the addressed robot.
package core

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/websocket"

	"RoombaLink/internal/history"
	"RoombaLink/internal/model"
	"RoombaLink/internal/parser"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// Console accepts telemetry published by Robot read loops, broadcasts it to
// websocket clients in the configured wire format, and forwards control
// requests to the registered robots.
type Console struct {
	Addr string

	// History, when set, receives every published batch and backs the
	// /api/history endpoint. Set before Start.
	History *history.Store

	out     parser.Parser
	robots  map[string]*Robot
	latest  map[string]model.Telemetry
	clients map[*websocket.Conn]bool
	mu      sync.Mutex
	server  *http.Server
}

// NewConsole constructs a Console listening on addr, encoding broadcasts
// with the given parser.
func NewConsole(addr string, out parser.Parser) *Console {
	return &Console{
		Addr:    addr,
		out:     out,
		robots:  map[string]*Robot{},
		latest:  map[string]model.Telemetry{},
		clients: map[*websocket.Conn]bool{},
	}
}

// RegisterRobot makes a robot addressable by control requests.
func (c *Console) RegisterRobot(r *Robot) {
	c.mu.Lock()
	c.robots[r.ID] = r
	c.mu.Unlock()
}

// Publish records the latest telemetry for its robot and broadcasts the
// encoded line to all websocket clients. Safe to call from robot read loops.
func (c *Console) Publish(t model.Telemetry) {
	line, err := c.out.EncodeTelemetry(t)
	if err != nil {
		log.Printf("console: encode telemetry err: %v", err)
		return
	}
	c.mu.Lock()
	c.latest[t.RobotID] = t
	for conn := range c.clients {
		_ = conn.WriteMessage(websocket.TextMessage, []byte(line))
	}
	c.mu.Unlock()

	if c.History != nil {
		if err := c.History.Append(t); err != nil {
			log.Printf("console: history append err: %v", err)
		}
	}
}

// Start launches the HTTP server for ws, latest and control endpoints.
// This call blocks until the server stops or fails.
func (c *Console) Start() {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", c.handleWS)
	mux.HandleFunc("/api/latest", c.handleLatest)
	mux.HandleFunc("/api/history", c.handleHistory)
	mux.HandleFunc("/control", c.handleControl)
	c.server = &http.Server{Addr: c.Addr, Handler: mux}
	log.Printf("Console is listening on %s", c.Addr)
	if err := c.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// Stop shuts down the HTTP server.
func (c *Console) Stop() {
	if c.server != nil {
		_ = c.server.Close()
	}
}

// handleWS upgrades HTTP to websocket and registers the client for broadcasts.
func (c *Console) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	c.mu.Lock()
	c.clients[conn] = true
	c.mu.Unlock()

	go func() {
		defer func() {
			c.mu.Lock()
			delete(c.clients, conn)
			c.mu.Unlock()
			if err := conn.Close(); err != nil {
				log.Printf("warning: failed to close websocket: %v", err)
			}
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()
}

// handleLatest returns the most recent telemetry batch per robot as JSON.
func (c *Console) handleLatest(w http.ResponseWriter, r *http.Request) {
	c.mu.Lock()
	snapshot := make(map[string]model.Telemetry, len(c.latest))
	for id, t := range c.latest {
		snapshot[id] = t
	}
	c.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		log.Printf("console: write latest err: %v", err)
	}
}

// handleHistory returns recent telemetry batches for one robot, newest
// first. Query params: robot (required), n (default 20).
func (c *Console) handleHistory(w http.ResponseWriter, r *http.Request) {
	if c.History == nil {
		http.Error(w, "history not enabled", 404)
		return
	}
	robot := r.URL.Query().Get("robot")
	if robot == "" {
		http.Error(w, "missing robot parameter", 400)
		return
	}
	n := 20
	if q := r.URL.Query().Get("n"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil || v < 1 {
			http.Error(w, "invalid n parameter", 400)
			return
		}
		n = v
	}
	batches, err := c.History.Recent(robot, n)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(batches); err != nil {
		log.Printf("console: write history err: %v", err)
	}
}

// handleControl accepts a structured CommandRequest and sends it to the
// addressed robot. Validation failures from the codec map to 400, an unknown
// robot to 404.
func (c *Console) handleControl(w http.ResponseWriter, r *http.Request) {
	var req model.CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	if req.Opcode < 0 || req.Opcode > 255 {
		http.Error(w, "opcode out of range", 400)
		return
	}
	c.mu.Lock()
	robot, ok := c.robots[req.RobotID]
	c.mu.Unlock()
	if !ok {
		http.Error(w, "no such robot", 404)
		return
	}
	if err := robot.Send(byte(req.Opcode), req.Args...); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(202)
	if err := json.NewEncoder(w).Encode(model.AckMessage{RobotID: req.RobotID, Ack: true}); err != nil {
		log.Printf("console: write ack err: %v", err)
	}
}
