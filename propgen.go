// Package propgen turns a Request-for-Proposal (RFP) document into a
// formatted technical-proposal draft. It extracts plain text from the
// input document, sends it to a hosted language model together with a
// desired technology focus, and assembles the structured response into
// a Markdown proposal with an embedded architecture diagram.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., gemini/, pdf/, trafilatura/).
package propgen
