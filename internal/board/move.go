package board

// Move encodes a chess move in 16 bits:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-15: move flag
type Move uint16

// MoveFlag selects the kind of move.
type MoveFlag uint16

const (
	FlagQuiet          MoveFlag = 0b0000
	FlagDoublePush     MoveFlag = 0b0001
	FlagKingCastle     MoveFlag = 0b0010
	FlagQueenCastle    MoveFlag = 0b0011
	FlagPromoKnight    MoveFlag = 0b0100
	FlagPromoBishop    MoveFlag = 0b0101
	FlagPromoRook      MoveFlag = 0b0110
	FlagPromoQueen     MoveFlag = 0b0111
	FlagCapture        MoveFlag = 0b1000
	FlagEnPassant      MoveFlag = 0b1010
	FlagPromoCapKnight MoveFlag = 0b1100
	FlagPromoCapBishop MoveFlag = 0b1101
	FlagPromoCapRook   MoveFlag = 0b1110
	FlagPromoCapQueen  MoveFlag = 0b1111
)

// NoMove is the null move: the all-zero encoding. It doubles as the
// absent/default value and as the search's side-pass primitive.
const NoMove Move = 0

// NewMove creates a move with the given flag.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(from) | Move(to)<<6 | Move(flag)<<12
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Flag returns the move flag.
func (m Move) Flag() MoveFlag {
	return MoveFlag(m >> 12)
}

// IsCapture returns true for captures, en passant, and promotion-captures.
func (m Move) IsCapture() bool {
	return m.Flag()&FlagCapture != 0
}

// IsPromotion returns true for quiet promotions and promotion-captures.
func (m Move) IsPromotion() bool {
	return m.Flag()&0b0100 != 0
}

// IsEnPassant returns true if this is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

// IsCastle returns true for either castling move.
func (m Move) IsCastle() bool {
	f := m.Flag()
	return f == FlagKingCastle || f == FlagQueenCastle
}

// Promotion returns the promoted-to piece type.
// Only meaningful when IsPromotion() is true.
func (m Move) Promotion() PieceType {
	return Knight + PieceType(m.Flag()&0b0011)
}

// String returns the coordinate notation of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}

	s := m.From().String() + m.To().String()

	if m.IsPromotion() {
		promoChars := [4]byte{'n', 'b', 'r', 'q'}
		s += string(promoChars[m.Flag()&0b0011])
	}

	return s
}

// MoveList is a fixed-capacity list of moves to avoid allocations in the
// hot path. 256 slots comfortably exceed the legal-move maximum of 218.
type MoveList struct {
	moves [256]Move
	count int
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Swap swaps two moves in the list.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Slice returns the moves as a slice backed by the list.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}
