package parser

import "github.com/fazi9228/cs-data-processor/internal/model"

// Scoring weights. Required fragments carry most of the confidence, strong
// fragments refine it, and a channel hit (filename or header) adds a flat
// bonus awarded at most once.
const (
	requiredWeight = 0.6
	strongWeight   = 0.3
	channelBonus   = 0.1
)

// Signatures is the detection rule table. Slice order is the tie-break
// order: when two types score equally, the earlier entry wins.
var Signatures = []Signature{
	{
		Type:          model.RecordTypeLineChat,
		Required:      []string{"chat transcript id", "social account: name"},
		Strong:        []string{"started by", "open chat unique id", "ready to assign (line)"},
		Channel:       []string{"line"},
		MinConfidence: 0.7,
	},
	{
		Type:          model.RecordTypeWeChatChat,
		Required:      []string{"wechat agent", "follower name"},
		Strong:        []string{"agent assigned time", "agent first response time (seconds)"},
		Channel:       []string{"wechat"},
		MinConfidence: 0.7,
	},
	{
		Type:          model.RecordTypeLiveChat,
		Required:      []string{"chat key", "agent", "start time"},
		Strong:        []string{"visitor ip address", "browser language", "chat origin url"},
		Channel:       []string{"sf", "live"},
		MinConfidence: 0.6,
	},
	{
		Type:          model.RecordTypeMessaging,
		Required:      []string{"messaging session name", "session owner: full name"},
		Strong:        []string{"messaging user: contact: full name", "messaging channel: channel name", "accept time"},
		Channel:       []string{"messaging", "session"},
		MinConfidence: 0.7,
	},
	{
		Type:          model.RecordTypeCaseData,
		Required:      []string{"case number", "case owner"},
		Strong:        []string{"case reason", "case status", "case: created date/time"},
		Channel:       []string{"case"},
		MinConfidence: 0.8,
	},
	{
		Type:          model.RecordTypeChatRating,
		Required:      []string{"rating", "chatkey"},
		Strong:        []string{"post-chat rating", "getfeedback"},
		Channel:       []string{"chat"},
		MinConfidence: 0.7,
	},
	{
		Type:          model.RecordTypeCaseRating,
		Required:      []string{"rating", "case"},
		Strong:        []string{"feedback created date", "outcome"},
		Channel:       []string{"case"},
		MinConfidence: 0.7,
	},
}
