package userprops

// Package userprops parses a Java-style properties file of user entries into
// identity records.
//
// File format:
//   username=password[,enabled|disabled][,role]...
//
// enabled and disabled are optional with enabled the default. For example:
//   user=password,ROLE_USER
//   admin=secret,ROLE_USER,ROLE_ADMIN
//   disabled_user=does_not_matter,disabled,ROLE_USER
//
// Properties syntax (comment lines, line continuation, escapes) follows the
// Java convention. The file must be fully valid: one bad entry fails the
// entire load with no partial result.
