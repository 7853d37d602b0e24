package transfer

import "time"

// Transfer is one row from the transfers fact table. PlayerName is
// stored as text by the upstream feed, not as a player foreign key.
// Fee and the club references are nullable: free transfers carry no
// fee and moves from/to retirement carry no club.
type Transfer struct {
	PlayerName string
	Date       time.Time
	FeeEUR     *int64
	FromClubID *int64
	ToClubID   *int64
}
