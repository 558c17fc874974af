package model

// RecordType is the logical category a source sheet is classified into.
type RecordType string

const (
	RecordTypeLiveChat   RecordType = "live_chat"
	RecordTypeLineChat   RecordType = "line_chat"
	RecordTypeWeChatChat RecordType = "wechat_chat"
	RecordTypeMessaging  RecordType = "messaging"
	RecordTypeCaseData   RecordType = "case_data"
	RecordTypeChatRating RecordType = "chat_rating"
	RecordTypeCaseRating RecordType = "case_rating"
	RecordTypeUnknown    RecordType = "unknown"
)

// Family groups record types that merge into the same master table.
type Family string

const (
	FamilyChat   Family = "chat"
	FamilyCase   Family = "case"
	FamilyRating Family = "rating"
)

// Family returns the master-table family for a record type.
// unknown belongs to no family.
func (rt RecordType) Family() (Family, bool) {
	switch rt {
	case RecordTypeLiveChat, RecordTypeLineChat, RecordTypeWeChatChat, RecordTypeMessaging:
		return FamilyChat, true
	case RecordTypeCaseData:
		return FamilyCase, true
	case RecordTypeChatRating, RecordTypeCaseRating:
		return FamilyRating, true
	}
	return "", false
}

// IsChat reports whether the record type is one of the chat-like types.
func (rt RecordType) IsChat() bool {
	f, ok := rt.Family()
	return ok && f == FamilyChat
}

// Valid reports whether rt is one of the known (classifiable) record types.
func (rt RecordType) Valid() bool {
	_, ok := rt.Family()
	return ok
}
