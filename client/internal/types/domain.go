package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// OwnerID scopes every todo operation to one logical owner. It is not
// configurable per call.
const OwnerID = 1633

// Todo is a titled, completable task owned by OwnerID.
type Todo struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	UserID    int    `json:"userId"`
}
