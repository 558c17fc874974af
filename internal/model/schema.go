package model

// FieldType is the semantic type of a canonical field; it selects which
// coercer the transformers apply.
type FieldType int

const (
	FieldText FieldType = iota
	FieldDate
	FieldNumber
)

// ChatSchema is the fixed column order of the chat master table.
// The list is reporting contract; do not reorder.
var ChatSchema = []string{
	"Agent", "Chat Key", "Chat Transcript Name", "Status", "Chat Reason",
	"Contact Name", "Start Time", "End Time", "Chat Duration (sec)",
	"Wait Time", "Post-Chat Rating", "Chat Start Time", "Ended By",
	"Type", "Detail", "Time", "Regulation", "Location",
	"Visitor IP Address", "Chat Origin URL", "Agent Message Count",
	"Visitor Message Count", "Agent Average Response Time",
	"Billing Country", "Browser Language", "Created Date",
	"Owner Dept", "Agent handling", "Agent Dept", "Day", "Week",
	"Hours", "Month", "Actual Start Time", "Actual End Time",
	"Actual Chat Duration (sec)", "Actual Chat Duration (min)",
	"Channel", "Start Time2", "End Time3", "Social Account: Name",
	"Ready To Assign (LINE)", "Started By", "Open Chat Unique ID",
	"Last Modified By: Full Name", "Last Modified Date", "Week ",
	"Agent Assigned Time", "Created By: Full Name",
	"Agent First Response Time (Seconds)", "Closed", "Agent Avg Response Time",
	"Accept Time", "Request Date", "Close Date",
}

// CaseSchema is the fixed column order of the case master table.
var CaseSchema = []string{
	"Account Billing Country", "Case Number", "Case Reason", "Case Owner",
	"Account Name", "Case Subject", "Premium Client Qualified", "Created By",
	"Case Creator", "Age", "Closed Reason", "Source Email", "To Email",
	"Case Record Type", "Case: Created Date/Time", "First Response",
	"Days Since Last Response Time Stamp", "Days Since Last Client Response",
	"Case Origin", "Case Creator: Alias", "Case Owner Profile", "Case: Closed",
	"First contact resolution", "Created Date", "Case Status", "Owner Dept",
	"Age group", "Month", "Week", "Day", "Hours only", "Hours Range",
	"Working hours (Y/N)", "First Response Time (min)", "First Response Time (hours)",
	"First Response Time Met", "case_created_date",
}

// RatingSchema is the fixed column order of the rating master table.
// "Week " keeps its trailing space; the source exports name it that way.
var RatingSchema = []string{
	"Feedback Created Date", "Owner Name", "Outcome", "Rating",
	"Account: Billing Country", "chat_case_number", "Language", "Reason",
	"chat_case_id", "Month", "Week ", "Day", "Team", "PositivePctHelper", "Source",
}

// SchemaFor returns the canonical column order for a family.
func SchemaFor(family Family) []string {
	switch family {
	case FamilyChat:
		return ChatSchema
	case FamilyCase:
		return CaseSchema
	case FamilyRating:
		return RatingSchema
	}
	return nil
}

var chatFieldTypes = map[string]FieldType{
	"Start Time":          FieldDate,
	"End Time":            FieldDate,
	"Chat Start Time":     FieldDate,
	"Time":                FieldDate,
	"Created Date":        FieldDate,
	"Actual Start Time":   FieldDate,
	"Actual End Time":     FieldDate,
	"Start Time2":         FieldDate,
	"End Time3":           FieldDate,
	"Last Modified Date":  FieldDate,
	"Agent Assigned Time": FieldDate,
	"Accept Time":         FieldDate,
	"Request Date":        FieldDate,
	"Close Date":          FieldDate,

	"Chat Duration (sec)":                 FieldNumber,
	"Wait Time":                           FieldNumber,
	"Post-Chat Rating":                    FieldNumber,
	"Agent Message Count":                 FieldNumber,
	"Visitor Message Count":               FieldNumber,
	"Agent Average Response Time":         FieldNumber,
	"Agent First Response Time (Seconds)": FieldNumber,
	"Agent Avg Response Time":             FieldNumber,
	"Actual Chat Duration (sec)":          FieldNumber,
	"Actual Chat Duration (min)":          FieldNumber,
	"Week":                                FieldNumber,
}

var caseFieldTypes = map[string]FieldType{
	"Case: Created Date/Time": FieldDate,
	"First Response":          FieldDate,
	"Created Date":            FieldDate,
	"case_created_date":       FieldDate,

	"Age":                                 FieldNumber,
	"First Response Time (min)":           FieldNumber,
	"First Response Time (hours)":         FieldNumber,
	"Days Since Last Response Time Stamp": FieldNumber,
	"Days Since Last Client Response":     FieldNumber,
	"Week":                                FieldNumber,
	"Hours only":                          FieldNumber,
}

var ratingFieldTypes = map[string]FieldType{
	"Feedback Created Date": FieldDate,
	"Rating":                FieldNumber,
	"PositivePctHelper":     FieldNumber,
}

// FieldTypeOf returns the semantic type of a canonical field within a family.
// Untagged fields are text.
func FieldTypeOf(family Family, field string) FieldType {
	var m map[string]FieldType
	switch family {
	case FamilyChat:
		m = chatFieldTypes
	case FamilyCase:
		m = caseFieldTypes
	case FamilyRating:
		m = ratingFieldTypes
	}
	if ft, ok := m[field]; ok {
		return ft
	}
	return FieldText
}

// ChatPrimaryDateColumns is the preference order for the column the chat
// transformer derives Month/Week/Day/Hours from.
var ChatPrimaryDateColumns = []string{"Start Time", "Actual Start Time", "Created Date"}

// CasePrimaryDateColumns is the preference order for the case transformer.
var CasePrimaryDateColumns = []string{"Case: Created Date/Time", "Created Date"}
