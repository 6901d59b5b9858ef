// Package seating assigns guests to table seats.
//
// Assign is a pure function: it copies its inputs, clears every existing
// assignment on the copies, and rebuilds seat/guest links from scratch. It
// never fails; capacity shortfalls are reported through Result.
//
// Algorithm:
//   - Pair companions: a guest whose GuestOf names another unpaired guest
//     forms a pair with that host. First match wins and pairing does not
//     follow chains.
//   - Order: pairs by host name and singles by name, or both shuffled.
//   - Fill: pairs first, then singles. Balanced mode rotates a table
//     pointer after every placement; sequential mode fills a table before
//     moving to the next one. Pairs that cannot sit together anywhere are
//     demoted to singles.
package seating
