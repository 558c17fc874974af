package parser

import "github.com/fazi9228/cs-data-processor/internal/model"

// Mapping pattern tables. Each canonical field carries an ordered fallback
// chain; the first pattern with a header hit wins and later patterns are
// never consulted. Short generic names (agent, number, id, team) are exact
// so they cannot shadow composite headers they happen to be contained in.

var chatFieldPatterns = []FieldPatterns{
	{Field: "Agent", Patterns: []Pattern{
		{Text: "owner: full name"},
		{Text: "wechat agent: agent nickname"},
		{Text: "session owner: full name"},
		{Text: "agent", Exact: true},
		{Text: "owner name"},
		{Text: "agent name"},
	}},
	{Field: "Chat Key", Patterns: []Pattern{
		{Text: "chat key"},
		{Text: "number", Exact: true},
		{Text: "chat transcript id"},
		{Text: "messaging session name"},
		{Text: "id", Exact: true},
	}},
	{Field: "Contact Name", Patterns: []Pattern{
		{Text: "contact name: full name"},
		{Text: "follower name"},
		{Text: "messaging user: contact: full name"},
		{Text: "contact name"},
	}},
	{Field: "Start Time", Patterns: []Pattern{
		{Text: "actual start time"},
		{Text: "start time"},
		{Text: "request time"},
		{Text: "created date"},
		{Text: "chat start time"},
	}},
	{Field: "End Time", Patterns: []Pattern{
		{Text: "actual end time"},
		{Text: "end time"},
	}},
	{Field: "Accept Time", Patterns: []Pattern{
		{Text: "accept date"},
		{Text: "accept time"},
	}},
	{Field: "Owner Dept", Patterns: []Pattern{
		{Text: "owner dept"},
		{Text: "team", Exact: true},
		{Text: "agent dept"},
		{Text: "department", Exact: true},
	}},
	{Field: "Actual Chat Duration (min)", Patterns: []Pattern{
		{Text: "actual chat duration (min)"},
		{Text: "actual duration (min)"},
		{Text: "duration (minutes)"},
		{Text: "aht"}, // substring: messaging exports name it "AHT (End - Accept) (min)"
	}},
	{Field: "Request Date", Patterns: []Pattern{
		{Text: "request date"},
		{Text: "request time"},
	}},
	{Field: "Close Date", Patterns: []Pattern{
		{Text: "close date"},
		{Text: "closed date"},
		{Text: "end date"},
	}},
}

// chatChannels is the constant injected into the Channel field, keyed purely
// by record type.
var chatChannels = map[model.RecordType]string{
	model.RecordTypeLiveChat:   "SF",
	model.RecordTypeLineChat:   "LINE",
	model.RecordTypeWeChatChat: "WeChat",
	model.RecordTypeMessaging:  "Messaging",
}

var chatRatingFieldPatterns = []FieldPatterns{
	{Field: "Feedback Created Date", Patterns: []Pattern{
		{Text: "getfeedback response: created date"},
		{Text: "feedback created date"},
	}},
	{Field: "Owner Name", Patterns: []Pattern{
		{Text: "getfeedback response: owner name"},
		{Text: "owner name"},
	}},
	{Field: "Outcome", Patterns: []Pattern{
		{Text: "outcome", Exact: true},
	}},
	{Field: "Rating", Patterns: []Pattern{
		{Text: "post-chat rating"},
		{Text: "rating", Exact: true},
	}},
	{Field: "Account: Billing Country", Patterns: []Pattern{
		{Text: "account: billing country"},
	}},
	{Field: "chat_case_number", Patterns: []Pattern{
		{Text: "chat transcript name"},
	}},
	{Field: "chat_case_id", Patterns: []Pattern{
		{Text: "chatkey", Exact: true},
	}},
	{Field: "Language", Patterns: []Pattern{
		{Text: "language", Exact: true},
	}},
	{Field: "Month", Patterns: []Pattern{
		{Text: "month", Exact: true},
	}},
	{Field: "Week ", Patterns: []Pattern{
		{Text: "week", Exact: true},
	}},
	{Field: "Day", Patterns: []Pattern{
		{Text: "day", Exact: true},
	}},
	{Field: "Team", Patterns: []Pattern{
		{Text: "team", Exact: true},
	}},
	{Field: "PositivePctHelper", Patterns: []Pattern{
		{Text: "positivepcthelper", Exact: true},
	}},
}

var caseRatingFieldPatterns = []FieldPatterns{
	{Field: "Feedback Created Date", Patterns: []Pattern{
		{Text: "getfeedback response: created date"},
		{Text: "feedback created date"},
	}},
	{Field: "Owner Name", Patterns: []Pattern{
		{Text: "getfeedback response: owner name"},
		{Text: "owner name"},
	}},
	{Field: "Outcome", Patterns: []Pattern{
		{Text: "outcome", Exact: true},
	}},
	{Field: "Rating", Patterns: []Pattern{
		{Text: "case satisfaction"},
		{Text: "rating", Exact: true},
	}},
	{Field: "Account: Billing Country", Patterns: []Pattern{
		{Text: "case: account billing country"},
		{Text: "account: billing country"},
	}},
	{Field: "chat_case_number", Patterns: []Pattern{
		{Text: "case: case number"},
	}},
	{Field: "chat_case_id", Patterns: []Pattern{
		{Text: "case: case id"},
	}},
	{Field: "Language", Patterns: []Pattern{
		{Text: "language", Exact: true},
	}},
	{Field: "Reason", Patterns: []Pattern{
		{Text: "case: case reason"},
	}},
	{Field: "Month", Patterns: []Pattern{
		{Text: "month", Exact: true},
	}},
	{Field: "Week ", Patterns: []Pattern{
		{Text: "week", Exact: true},
	}},
	{Field: "Day", Patterns: []Pattern{
		{Text: "day", Exact: true},
	}},
	{Field: "Team", Patterns: []Pattern{
		{Text: "team", Exact: true},
	}},
	{Field: "PositivePctHelper", Patterns: []Pattern{
		{Text: "positivepcthelper", Exact: true},
	}},
}

// ratingConstants are the fixed values injected per rating source.
var ratingConstants = map[model.RecordType]map[string]string{
	model.RecordTypeChatRating: {
		"Reason": "Chat Feedback",
		"Source": "Chat",
	},
	model.RecordTypeCaseRating: {
		"Source": "Case",
	},
}

// fieldPatternsFor returns the pattern table for a record type. case_data
// has no patterns: case exports already use the canonical header names, so
// every field backfills by exact name in the transformer.
func fieldPatternsFor(rt model.RecordType) []FieldPatterns {
	switch rt {
	case model.RecordTypeLiveChat, model.RecordTypeLineChat, model.RecordTypeWeChatChat, model.RecordTypeMessaging:
		return chatFieldPatterns
	case model.RecordTypeChatRating:
		return chatRatingFieldPatterns
	case model.RecordTypeCaseRating:
		return caseRatingFieldPatterns
	}
	return nil
}
