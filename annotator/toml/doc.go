// Package toml places annotation comments into TOML documents.
//
// Every header and key line owns the blank and comment lines directly above
// it, back to the previous statement. An annotation for a path is merged into
// that run according to [annotation.Config.ExistingComments], and all other
// bytes of the document are left exactly as they were.
//
// Some paths have nowhere to go and are dropped: tables that only exist
// implicitly (as the parent of [a.b] or a dotted key), anything inside an
// inline table, and elements of an array of tables after the first.
package toml
