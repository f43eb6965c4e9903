// Package schema owns the canonical schema document: header attributes plus
// ordered collections of number, string, enum, set and composite types and
// the message dictionary.
//
// A Store is opened against one schema name and one Repository. Every Add*
// call validates its parent, applies the collection's uniqueness rule and
// commits the whole document. Duplicate registrations are not errors: they
// return OutcomeExists (or OutcomeMerged for enum/set structures) and leave
// a notice in Store.Notices.
//
// # Uniqueness rules
//
//   - number/string types: (data type, length); the first presence wins
//   - enum/set types: name; structures merge, existing keys win
//   - composites and messages: name
//   - repeating groups: group id within the message
//   - document columns: the column string within the message
//   - wire fields and composite elements: structural equality
//
// Field and template identifiers are not checked at registration time; see
// CheckIdentifiers.
package schema
