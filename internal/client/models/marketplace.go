package models

import "time"

// The records below are carried by the client (realtime payloads, listings)
// but no bidding, payment or messaging behaviour is implemented here.

type AuctionStatus string

const (
	AuctionDraft     AuctionStatus = "draft"
	AuctionScheduled AuctionStatus = "scheduled"
	AuctionActive    AuctionStatus = "active"
	AuctionEnded     AuctionStatus = "ended"
	AuctionSold      AuctionStatus = "sold"
	AuctionCancelled AuctionStatus = "cancelled"
)

type Location struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Address    string  `json:"address,omitempty"`
	City       string  `json:"city,omitempty"`
	State      string  `json:"state,omitempty"`
	Country    string  `json:"country,omitempty"`
	PostalCode string  `json:"postal_code,omitempty"`
}

type Auction struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Images        []string      `json:"images"`
	StartingPrice float64       `json:"starting_price"`
	CurrentPrice  float64       `json:"current_price"`
	BidIncrement  float64       `json:"bid_increment"`
	ReservePrice  *float64      `json:"reserve_price,omitempty"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	Status        AuctionStatus `json:"status"`
	CategoryID    string        `json:"category_id"`
	SellerID      string        `json:"seller_id"`
	WinnerID      *string       `json:"winner_id,omitempty"`
	ViewCount     int           `json:"view_count"`
	BidCount      int           `json:"bid_count"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Tags          []string      `json:"tags"`
	Location      *Location     `json:"location,omitempty"`
}

type Bid struct {
	ID         string    `json:"id"`
	AuctionID  string    `json:"auction_id"`
	BidderID   string    `json:"bidder_id"`
	Amount     float64   `json:"amount"`
	IsAutoBid  bool      `json:"is_auto_bid"`
	MaxAutoBid *float64  `json:"max_auto_bid,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Icon        string  `json:"icon"`
	ParentID    *string `json:"parent_id,omitempty"`
	Description *string `json:"description,omitempty"`
	ItemCount   int     `json:"item_count"`
}

type MessageAttachment struct {
	ID   string `json:"id"`
	Type string `json:"type"` // image | document
	URL  string `json:"url"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}

type Message struct {
	ID             string              `json:"id"`
	ConversationID string              `json:"conversation_id"`
	SenderID       string              `json:"sender_id"`
	Content        string              `json:"content"`
	IsRead         bool                `json:"is_read"`
	CreatedAt      time.Time           `json:"created_at"`
	Attachments    []MessageAttachment `json:"attachments,omitempty"`
}

type Conversation struct {
	ID             string    `json:"id"`
	ParticipantIDs []string  `json:"participant_ids"`
	LastMessage    *Message  `json:"last_message,omitempty"`
	UnreadCount    int       `json:"unread_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type PaymentMethod struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"` // card | bank_account | paypal
	LastFour  string    `json:"last_four"`
	Brand     *string   `json:"brand,omitempty"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}

type Transaction struct {
	ID              string     `json:"id"`
	Type            string     `json:"type"` // purchase | sale | withdrawal | deposit
	Amount          float64    `json:"amount"`
	Fee             float64    `json:"fee"`
	NetAmount       float64    `json:"net_amount"`
	Status          string     `json:"status"` // pending | completed | failed
	AuctionID       *string    `json:"auction_id,omitempty"`
	UserID          string     `json:"user_id"`
	PaymentMethodID *string    `json:"payment_method_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// APIError is the error body returned by marketplace endpoints.
type APIError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	Data    []T  `json:"data"`
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	HasMore bool `json:"has_more"`
}
