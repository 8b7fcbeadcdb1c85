package models

// Role names used for authorization. CLUB is the account that owns a club
// and manages its events and subscriptions.
const (
	RoleAdmin   = "ADMIN"
	RoleClub    = "CLUB"
	RoleTeacher = "TEACHER"
	RoleParent  = "PARENT"
)

// Gender defines the possible gender values for a swimmer.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// Stroke defines the swim styles used for events and records.
type Stroke string

const (
	Freestyle    Stroke = "freestyle"
	Backstroke   Stroke = "backstroke"
	Breaststroke Stroke = "breaststroke"
	Butterfly    Stroke = "butterfly"
	Medley       Stroke = "medley"
)

// RelationshipType defines the relationship of a parent/guardian to a swimmer.
type RelationshipType string

const (
	Father   RelationshipType = "father"
	Mother   RelationshipType = "mother"
	Guardian RelationshipType = "guardian"
	OtherRel RelationshipType = "other"
)

// SubscriptionStatus defines the status of a swimmer's subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// PaymentStatus defines the status of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)
