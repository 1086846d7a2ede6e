// Package model contains the flat record types produced by the dataset
// generators and the closed enumerations they draw from.
package model

import "fmt"

// Position is an athlete's playing position.
type Position int

const (
	Forward Position = iota + 1
	Midfielder
	Defender
	Goalkeeper
	Winger
)

var positionNames = map[Position]string{
	Forward:    "Forward",
	Midfielder: "Midfielder",
	Defender:   "Defender",
	Goalkeeper: "Goalkeeper",
	Winger:     "Winger",
}

func (p Position) String() string { return enumName(positionNames, p) }

// SessionType selects which metric ranges apply to a session.
type SessionType int

const (
	Training SessionType = iota + 1
	Match
	Recovery
)

var sessionTypeNames = map[SessionType]string{
	Training: "Training",
	Match:    "Match",
	Recovery: "Recovery",
}

func (s SessionType) String() string { return enumName(sessionTypeNames, s) }

// SessionTypes lists every session type in declaration order.
func SessionTypes() []SessionType { return []SessionType{Training, Match, Recovery} }

// EventType is the kind of on-ball action in the event log.
type EventType int

const (
	Pass EventType = iota + 1
	Shot
	Duel
	Reception
	Carry
	Clearance
)

var eventTypeNames = map[EventType]string{
	Pass:      "Pass",
	Shot:      "Shot",
	Duel:      "Duel",
	Reception: "Reception",
	Carry:     "Carry",
	Clearance: "Clearance",
}

func (e EventType) String() string { return enumName(eventTypeNames, e) }

// Outcome is the result of an event. Shots use Goal through Blocked,
// every other action uses Successful or Failed.
type Outcome int

const (
	Goal Outcome = iota + 1
	OnTarget
	OffTarget
	Blocked
	Successful
	Failed
)

var outcomeNames = map[Outcome]string{
	Goal:       "Goal",
	OnTarget:   "On target",
	OffTarget:  "Off target",
	Blocked:    "Blocked",
	Successful: "Successful",
	Failed:     "Failed",
}

func (o Outcome) String() string { return enumName(outcomeNames, o) }

// IsShotOutcome reports whether o belongs to the shot outcome set.
func (o Outcome) IsShotOutcome() bool { return o >= Goal && o <= Blocked }

// BodyPart is the body part used to play the ball.
type BodyPart int

const (
	RightFoot BodyPart = iota + 1
	LeftFoot
	Head
)

var bodyPartNames = map[BodyPart]string{
	RightFoot: "Right foot",
	LeftFoot:  "Left foot",
	Head:      "Head",
}

func (b BodyPart) String() string { return enumName(bodyPartNames, b) }

// Period is the half of the match.
type Period int

const (
	FirstHalf  Period = 1
	SecondHalf Period = 2
)

func enumName[K comparable](names map[K]string, k K) string {
	if n, ok := names[k]; ok {
		return n
	}
	return fmt.Sprintf("Unknown(%d)", any(k))
}
