// Package hashing provides Zobrist position hashes and position counting.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

const numSquares = chess.BoardSize * chess.BoardSize

// zobristKeys holds one random key per colour, kind and square.
var zobristKeys [2][chess.NumKinds][numSquares]uint64

func init() {
	// splitmix64 with a fixed seed keeps hashes stable across runs.
	state := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
	for c := range zobristKeys {
		for k := range zobristKeys[c] {
			for sq := range zobristKeys[c][k] {
				zobristKeys[c][k][sq] = next()
			}
		}
	}
}

func squareIndex(sq chess.Square) int {
	return sq.Rank*chess.BoardSize + sq.File
}

// GenerateZobristHash hashes the piece placement of b. HasMoved flags are
// not part of the hash.
func GenerateZobristHash(b *chess.Board) uint64 {
	var hash uint64
	for _, p := range b.All() {
		if p.Kind < 0 || p.Kind >= chess.NumKinds {
			continue
		}
		hash ^= zobristKeys[p.Color][p.Kind][squareIndex(p.Pos)]
	}
	return hash
}

// WeakHash is a cheap order-independent checksum of the placement, used as a
// secondary check when Zobrist hashes collide.
func WeakHash(b *chess.Board) uint32 {
	var sum uint32
	for _, p := range b.All() {
		sum += uint32(squareIndex(p.Pos)+1) * uint32(int(p.Kind)+1+int(p.Color)*int(chess.NumKinds))
	}
	return sum
}

// PositionSignature identifies a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the placement
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
}

// Signature returns the signature of b.
func Signature(b *chess.Board) PositionSignature {
	return PositionSignature{Hash: GenerateZobristHash(b), WeakHash: WeakHash(b)}
}

// PositionCounter counts how often each position has been seen.
// It is not safe for concurrent use.
type PositionCounter struct {
	counts map[PositionSignature]int
}

// NewPositionCounter creates an empty counter.
func NewPositionCounter() *PositionCounter {
	return &PositionCounter{counts: make(map[PositionSignature]int)}
}

// Add records b and returns how many times its position has now been seen.
func (pc *PositionCounter) Add(b *chess.Board) int {
	sig := Signature(b)
	pc.counts[sig]++
	return pc.counts[sig]
}

// Count returns how many times the position of b has been recorded.
func (pc *PositionCounter) Count(b *chess.Board) int {
	return pc.counts[Signature(b)]
}

// UniqueCount returns the number of distinct positions recorded.
func (pc *PositionCounter) UniqueCount() int {
	return len(pc.counts)
}

// Reset clears the counter.
func (pc *PositionCounter) Reset() {
	pc.counts = make(map[PositionSignature]int)
}
