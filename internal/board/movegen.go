package board

// GenerateLegalMoves generates all legal moves for the side to move.
func (p *Position) GenerateLegalMoves() *MoveList {
	ml := &MoveList{}
	p.generatePseudoLegal(ml)
	return p.filterLegal(ml)
}

// GenerateLegalCaptures generates legal moves carrying the capture flag
// (captures, en passant, promotion-captures). Used by quiescence search.
func (p *Position) GenerateLegalCaptures() *MoveList {
	ml := &MoveList{}
	p.generatePseudoLegal(ml)

	captures := &MoveList{}
	for i := 0; i < ml.Len(); i++ {
		if ml.Get(i).IsCapture() {
			captures.Add(ml.Get(i))
		}
	}
	return p.filterLegal(captures)
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (p *Position) HasLegalMoves() bool {
	ml := &MoveList{}
	p.generatePseudoLegal(ml)
	us := p.SideToMove
	them := us.Other()
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		undo := p.MakeMove(m)
		legal := !p.IsSquareAttacked(p.KingSquare[us], them)
		p.UnmakeMove(m, undo)
		if legal {
			return true
		}
	}
	return false
}

// filterLegal keeps the moves that do not leave the mover's king attacked,
// verified by make/test/unmake.
func (p *Position) filterLegal(ml *MoveList) *MoveList {
	result := &MoveList{}
	us := p.SideToMove
	them := us.Other()

	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		undo := p.MakeMove(m)
		if !p.IsSquareAttacked(p.KingSquare[us], them) {
			result.Add(m)
		}
		p.UnmakeMove(m, undo)
	}
	return result
}

// generatePseudoLegal generates all pseudo-legal moves into ml.
func (p *Position) generatePseudoLegal(ml *MoveList) {
	us := p.SideToMove
	occupied := p.AllOccupied
	enemies := p.Occupied[us.Other()]

	p.generatePawnMoves(ml, us, enemies, occupied)

	knights := p.Pieces[us][Knight]
	for knights != 0 {
		from := knights.PopLSB()
		addPieceMoves(ml, from, KnightAttacks(from)&^p.Occupied[us], enemies)
	}

	bishops := p.Pieces[us][Bishop]
	for bishops != 0 {
		from := bishops.PopLSB()
		addPieceMoves(ml, from, BishopAttacks(from, occupied)&^p.Occupied[us], enemies)
	}

	rooks := p.Pieces[us][Rook]
	for rooks != 0 {
		from := rooks.PopLSB()
		addPieceMoves(ml, from, RookAttacks(from, occupied)&^p.Occupied[us], enemies)
	}

	queens := p.Pieces[us][Queen]
	for queens != 0 {
		from := queens.PopLSB()
		addPieceMoves(ml, from, QueenAttacks(from, occupied)&^p.Occupied[us], enemies)
	}

	kingFrom := p.KingSquare[us]
	addPieceMoves(ml, kingFrom, KingAttacks(kingFrom)&^p.Occupied[us], enemies)

	p.generateCastlingMoves(ml, us)
}

// addPieceMoves emits one move per set target bit, flagged capture when an
// enemy piece sits there.
func addPieceMoves(ml *MoveList, from Square, targets, enemies Bitboard) {
	for targets != 0 {
		to := targets.PopLSB()
		if enemies.IsSet(to) {
			ml.Add(NewMove(from, to, FlagCapture))
		} else {
			ml.Add(NewMove(from, to, FlagQuiet))
		}
	}
}

// generatePawnMoves generates pushes, captures, promotions, and en passant.
func (p *Position) generatePawnMoves(ml *MoveList, us Color, enemies, occupied Bitboard) {
	pawns := p.Pieces[us][Pawn]
	empty := ^occupied

	var push1, push2, attackL, attackR Bitboard
	var promotionRank Bitboard
	var pushDir int

	if us == White {
		push1 = pawns.North() & empty
		push2 = (push1 & Rank3).North() & empty
		attackL = pawns.NorthWest() & enemies
		attackR = pawns.NorthEast() & enemies
		promotionRank = Rank8
		pushDir = 8
	} else {
		push1 = pawns.South() & empty
		push2 = (push1 & Rank6).South() & empty
		attackL = pawns.SouthWest() & enemies
		attackR = pawns.SouthEast() & enemies
		promotionRank = Rank1
		pushDir = -8
	}

	// Single pushes (non-promotion)
	nonPromo := push1 &^ promotionRank
	for nonPromo != 0 {
		to := nonPromo.PopLSB()
		ml.Add(NewMove(Square(int(to)-pushDir), to, FlagQuiet))
	}

	// Double pushes
	for push2 != 0 {
		to := push2.PopLSB()
		ml.Add(NewMove(Square(int(to)-2*pushDir), to, FlagDoublePush))
	}

	// Captures (non-promotion)
	nonPromoL := attackL &^ promotionRank
	for nonPromoL != 0 {
		to := nonPromoL.PopLSB()
		ml.Add(NewMove(Square(int(to)-pushDir+1), to, FlagCapture))
	}
	nonPromoR := attackR &^ promotionRank
	for nonPromoR != 0 {
		to := nonPromoR.PopLSB()
		ml.Add(NewMove(Square(int(to)-pushDir-1), to, FlagCapture))
	}

	// Promotions
	promoPush := push1 & promotionRank
	for promoPush != 0 {
		to := promoPush.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir), to, false)
	}
	promoL := attackL & promotionRank
	for promoL != 0 {
		to := promoL.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir+1), to, true)
	}
	promoR := attackR & promotionRank
	for promoR != 0 {
		to := promoR.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir-1), to, true)
	}

	// En passant: the target square must be one of the pawn's attack squares.
	if p.EnPassant != NoSquare {
		epAttackers := pawnAttacks[us.Other()][p.EnPassant] & pawns
		for epAttackers != 0 {
			from := epAttackers.PopLSB()
			ml.Add(NewMove(from, p.EnPassant, FlagEnPassant))
		}
	}
}

// addPromotions adds all four promotion moves for a push or capture.
func addPromotions(ml *MoveList, from, to Square, capture bool) {
	if capture {
		ml.Add(NewMove(from, to, FlagPromoCapQueen))
		ml.Add(NewMove(from, to, FlagPromoCapRook))
		ml.Add(NewMove(from, to, FlagPromoCapBishop))
		ml.Add(NewMove(from, to, FlagPromoCapKnight))
	} else {
		ml.Add(NewMove(from, to, FlagPromoQueen))
		ml.Add(NewMove(from, to, FlagPromoRook))
		ml.Add(NewMove(from, to, FlagPromoBishop))
		ml.Add(NewMove(from, to, FlagPromoKnight))
	}
}

// generateCastlingMoves emits castling when the right is set, the squares
// between king and rook are empty, and the king's from, pass-through, and
// to squares are unattacked.
func (p *Position) generateCastlingMoves(ml *MoveList, us Color) {
	them := us.Other()

	if us == White {
		if p.CastlingRights&WhiteKingSideCastle != 0 &&
			p.AllOccupied&(SquareBB(F1)|SquareBB(G1)) == 0 &&
			!p.IsSquareAttacked(E1, them) && !p.IsSquareAttacked(F1, them) && !p.IsSquareAttacked(G1, them) {
			ml.Add(NewMove(E1, G1, FlagKingCastle))
		}
		if p.CastlingRights&WhiteQueenSideCastle != 0 &&
			p.AllOccupied&(SquareBB(B1)|SquareBB(C1)|SquareBB(D1)) == 0 &&
			!p.IsSquareAttacked(E1, them) && !p.IsSquareAttacked(D1, them) && !p.IsSquareAttacked(C1, them) {
			ml.Add(NewMove(E1, C1, FlagQueenCastle))
		}
	} else {
		if p.CastlingRights&BlackKingSideCastle != 0 &&
			p.AllOccupied&(SquareBB(F8)|SquareBB(G8)) == 0 &&
			!p.IsSquareAttacked(E8, them) && !p.IsSquareAttacked(F8, them) && !p.IsSquareAttacked(G8, them) {
			ml.Add(NewMove(E8, G8, FlagKingCastle))
		}
		if p.CastlingRights&BlackQueenSideCastle != 0 &&
			p.AllOccupied&(SquareBB(B8)|SquareBB(C8)|SquareBB(D8)) == 0 &&
			!p.IsSquareAttacked(E8, them) && !p.IsSquareAttacked(D8, them) && !p.IsSquareAttacked(C8, them) {
			ml.Add(NewMove(E8, C8, FlagQueenCastle))
		}
	}
}

// ParseCoordinateMove matches a coordinate move string ("e2e4", "e7e8q")
// against the position's legal moves. Returns NoMove when nothing matches.
func (p *Position) ParseCoordinateMove(s string) Move {
	if len(s) != 4 && len(s) != 5 {
		return NoMove
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove
	}

	var promo PieceType = NoPieceType
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove
		}
	}

	legal := p.GenerateLegalMoves()
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() {
			if m.Promotion() == promo {
				return m
			}
		} else if promo == NoPieceType {
			return m
		}
	}
	return NoMove
}

// IsCheckmate returns true if the side to move is mated.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate returns true if the side to move has no moves and is not in check.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}
