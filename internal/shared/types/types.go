package types

// Vec2 represents a position or velocity in arena space. The y axis grows
// downward; y=0 is the ceiling.
type Vec2 struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

// PlayerInput is the per-frame control intent sent by a client.
type PlayerInput struct {
	Side       int    `json:"side" msgpack:"side"`
	Sequence   uint64 `json:"sequence" msgpack:"sequence"`
	XDirection int    `json:"x_direction" msgpack:"x_direction"` // -1..1
	YDirection int    `json:"y_direction" msgpack:"y_direction"` // -1..1
	PowerHit   int    `json:"power_hit" msgpack:"power_hit"`     // 0|1
	ClientMS   int64  `json:"client_ms" msgpack:"client_ms"`
}

// PlayerState is the replicated state for one avatar.
type PlayerState struct {
	Side            int     `json:"side" msgpack:"side"`
	IsComputer      bool    `json:"is_computer" msgpack:"is_computer"`
	Position        Vec2    `json:"position" msgpack:"position"`
	VelocityY       float64 `json:"velocity_y" msgpack:"velocity_y"`
	State           string  `json:"state" msgpack:"state"`
	DivingDirection int     `json:"diving_direction" msgpack:"diving_direction"`
	Holding         bool    `json:"holding" msgpack:"holding"`
	FrameNumber     int     `json:"frame_number" msgpack:"frame_number"`
	SoundChu        bool    `json:"sound_chu,omitempty" msgpack:"sound_chu"`
	SoundPika       bool    `json:"sound_pika,omitempty" msgpack:"sound_pika"`
	SoundPipikachu  bool    `json:"sound_pipikachu,omitempty" msgpack:"sound_pipikachu"`
}

// BallState is the replicated state for the ball, including the cosmetic
// fields the renderer consumes.
type BallState struct {
	Position           Vec2    `json:"position" msgpack:"position"`
	Velocity           Vec2    `json:"velocity" msgpack:"velocity"`
	IsPowerHit         bool    `json:"is_power_hit" msgpack:"is_power_hit"`
	Rotation           int     `json:"rotation" msgpack:"rotation"`
	PrevPosition       Vec2    `json:"prev_position" msgpack:"prev_position"`
	PrevPrevPosition   Vec2    `json:"prev_prev_position" msgpack:"prev_prev_position"`
	PunchEffectX       float64 `json:"punch_effect_x" msgpack:"punch_effect_x"`
	PunchEffectY       float64 `json:"punch_effect_y" msgpack:"punch_effect_y"`
	PunchEffectRadius  float64 `json:"punch_effect_radius" msgpack:"punch_effect_radius"`
	SoundTouchedGround bool    `json:"sound_touched_ground,omitempty" msgpack:"sound_touched_ground"`
	SoundPowerHit      bool    `json:"sound_power_hit,omitempty" msgpack:"sound_power_hit"`
}

// ScoreState tracks goals and the serving side.
type ScoreState struct {
	Side1     int `json:"side1" msgpack:"side1"`
	Side2     int `json:"side2" msgpack:"side2"`
	ServeSide int `json:"serve_side" msgpack:"serve_side"`
}

// GameplayEvent tracks state changes worth UI/audio feedback.
type GameplayEvent struct {
	Type string `json:"type" msgpack:"type"` // goal|round_start|match_end
	Side int    `json:"side,omitempty" msgpack:"side"`
}

// MatchSnapshot is replicated to all clients after each step.
type MatchSnapshot struct {
	MatchID string          `json:"match_id" msgpack:"match_id"`
	Tick    uint64          `json:"tick" msgpack:"tick"`
	Players [2]PlayerState  `json:"players" msgpack:"players"`
	Ball    BallState       `json:"ball" msgpack:"ball"`
	Score   ScoreState      `json:"score" msgpack:"score"`
	Ended   bool            `json:"ended" msgpack:"ended"`
	Winner  int             `json:"winner,omitempty" msgpack:"winner"`
	Events  []GameplayEvent `json:"events,omitempty" msgpack:"events"`
}

// LobbyJoinRequest asks the lobby to find an opponent.
type LobbyJoinRequest struct {
	PlayerID    string `json:"player_id" msgpack:"player_id"`
	DisplayName string `json:"display_name,omitempty" msgpack:"display_name"`
}

// LobbyJoinResponse carries the ticket to poll on.
type LobbyJoinResponse struct {
	TicketID string `json:"ticket_id" msgpack:"ticket_id"`
	Status   string `json:"status" msgpack:"status"` // searching|matched|cancelled
}

// LobbyPollResponse reports ticket progress; Assignment is set once matched.
type LobbyPollResponse struct {
	TicketID   string           `json:"ticket_id" msgpack:"ticket_id"`
	Status     string           `json:"status" msgpack:"status"`
	Assignment *MatchAssignment `json:"assignment,omitempty" msgpack:"assignment"`
}

// MatchAssignment tells a matched player where to connect and which side
// to play. BotFill marks a match against the built-in computer player.
type MatchAssignment struct {
	TicketID    string `json:"ticket_id" msgpack:"ticket_id"`
	MatchID     string `json:"match_id" msgpack:"match_id"`
	Side        int    `json:"side" msgpack:"side"`
	Opponent    string `json:"opponent" msgpack:"opponent"`
	BotFill     bool   `json:"bot_fill" msgpack:"bot_fill"`
	ServerAddr  string `json:"server_addr" msgpack:"server_addr"`
	FoundAtUnix int64  `json:"found_at_unix" msgpack:"found_at_unix"`
}

// TelemetryEvent is one gameplay event reported by a game server.
type TelemetryEvent struct {
	EventID   string `json:"event_id" msgpack:"event_id"`
	MatchID   string `json:"match_id" msgpack:"match_id"`
	EventType string `json:"event_type" msgpack:"event_type"` // goal|round_start|match_end
	Side      int    `json:"side,omitempty" msgpack:"side"`
	Tick      uint64 `json:"tick" msgpack:"tick"`
	Timestamp int64  `json:"timestamp" msgpack:"timestamp"` // unix milliseconds
}

// ClientEnvelope is sent from client to server.
type ClientEnvelope struct {
	Type  string       `json:"type" msgpack:"type"` // hello|input|ping
	Side  int          `json:"side,omitempty" msgpack:"side"`
	Input *PlayerInput `json:"input,omitempty" msgpack:"input"`
}

// ServerEnvelope is sent from server to client.
type ServerEnvelope struct {
	Type     string         `json:"type" msgpack:"type"` // welcome|state|pong|error
	Side     int            `json:"side,omitempty" msgpack:"side"`
	Tick     uint64         `json:"tick,omitempty" msgpack:"tick"`
	State    *MatchSnapshot `json:"state,omitempty" msgpack:"state"`
	ServerMS int64          `json:"server_ms,omitempty" msgpack:"server_ms"`
	Message  string         `json:"message,omitempty" msgpack:"message"`
}
