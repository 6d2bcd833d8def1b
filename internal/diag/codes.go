package diag

import "fmt"

// Code identifies a diagnostic kind. Ranges:
// 1xxx lexical, 2xxx syntax, 3xxx verification, 4xxx pipeline/driver.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar    Code = 1001
	LexBadNumber      Code = 1002
	LexTokenTooLong   Code = 1003
	LexTooManyTokens  Code = 1004
	LexBadIdentifier  Code = 1005

	// Syntax
	SynUnexpectedToken Code = 2001
	SynExpectIdent     Code = 2002
	SynExpectType      Code = 2003
	SynUnclosedBrace   Code = 2004
	SynExpectKeyword   Code = 2005
	SynTopLevel        Code = 2006
	SynExpectInt       Code = 2007

	// Verification
	VerifyDuplicateModule Code = 3001
	VerifyDuplicateName   Code = 3002
	VerifyUnknownModule   Code = 3003
	VerifyUndefinedName   Code = 3004
	VerifyZeroWidth       Code = 3005

	// Pipeline / driver
	PassUnknown      Code = 4001
	PipelineEmpty    Code = 4002
	DriverNoInput    Code = 4003
)

func (c Code) String() string {
	return fmt.Sprintf("HW%04d", uint16(c))
}
