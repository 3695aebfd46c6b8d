// Package entries implements the on-disk clipboard history.
//
// A history is a single flat directory. Every entry is one regular file
// named "{timestamp}.{ext}", where timestamp is microseconds since the Unix
// epoch and ext is the content type tag. There is no index file: the
// directory listing sorted by name descending is the history, newest first,
// and the position in that listing is the entry's id.
//
// Names are compared as strings. This orders entries by time only while
// all timestamps have the same number of digits, which holds for every
// microsecond timestamp between 2001 and 2286.
//
// Nothing is cached and no locks are taken. Every operation lists the
// directory again, so an entry removed by another process between a
// listing and a later read or delete surfaces as an error wrapping
// fs.ErrNotExist.
package entries
