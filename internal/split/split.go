// Package split computes per-user shares for a payment. It is pure:
// callers resolve room occupancy and persist the result themselves.
package split

import "github.com/shopspring/decimal"

// Share is one user's portion of a payment.
type Share struct {
	UserID uint
	Amount float64
}

// RoomOccupants is a room selected for a room-mode split together
// with its current occupants.
type RoomOccupants struct {
	RoomID  uint
	UserIDs []uint
}

// ByUsers divides amount evenly across the distinct user ids. Each
// share is the per-head quotient rounded half-up to 2 places; the
// rounding remainder is not redistributed, so the share total may
// drift from amount by up to half a cent per participant.
func ByUsers(amount float64, userIDs []uint) []Share {
	ids := distinct(userIDs)
	if len(ids) == 0 {
		return nil
	}

	perUser := divRound(amount, len(ids))
	shares := make([]Share, 0, len(ids))
	for _, id := range ids {
		shares = append(shares, Share{UserID: id, Amount: perUser})
	}
	return shares
}

// ByRooms divides amount evenly across the distinct rooms, then each
// room's allocation evenly across its current occupants. A room with
// no occupants contributes no shares: its allocation is dropped, not
// redistributed. Both divisions round independently, so rounding
// error compounds across the two steps.
func ByRooms(amount float64, rooms []RoomOccupants) []Share {
	var (
		ordered []RoomOccupants
		seen    = make(map[uint]bool)
	)
	for _, room := range rooms {
		if seen[room.RoomID] {
			continue
		}
		seen[room.RoomID] = true
		ordered = append(ordered, room)
	}
	if len(ordered) == 0 {
		return nil
	}

	perRoom := divRound(amount, len(ordered))

	var shares []Share
	for _, room := range ordered {
		occupants := distinct(room.UserIDs)
		if len(occupants) == 0 {
			continue
		}
		perUser := divRound(perRoom, len(occupants))
		for _, id := range occupants {
			shares = append(shares, Share{UserID: id, Amount: perUser})
		}
	}
	return shares
}

// Round2 rounds half-up to 2 decimal places.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

func divRound(amount float64, n int) float64 {
	f, _ := decimal.NewFromFloat(amount).
		Div(decimal.NewFromInt(int64(n))).
		Round(2).
		Float64()
	return f
}

func distinct(ids []uint) []uint {
	var (
		out  []uint
		seen = make(map[uint]bool)
	)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
