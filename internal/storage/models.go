// Package storage provides document store models and repositories for the
// concierge engine. Tours and facts are read-only from the pipeline's
// perspective; the chat log is append-only.
package storage

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tour categories as stored in the tour collection.
const (
	TourCategoryOvernight = "konaklamali"
	TourCategoryDayTrip   = "gunubirlik"
	TourCategoryAbroad    = "yurtdisi"
)

// Tour represents a bookable tour offering.
type Tour struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string             `bson:"tur_adi" json:"tur_adi"`
	Category       string             `bson:"kategori" json:"kategori"`
	Price          float64            `bson:"fiyat" json:"fiyat"`
	Duration       string             `bson:"sure" json:"sure"`
	DeparturePoint string             `bson:"kalkis_noktasi" json:"kalkis_noktasi"`
	Destination    string             `bson:"destinasyon" json:"destinasyon"`
	Features       []string           `bson:"ozellikler" json:"ozellikler"`
	Active         bool               `bson:"aktif" json:"aktif"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// Fact represents an informational snippet about the company, tagged by
// category. The facts collection is bulk-replaced by the refresh job.
type Fact struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Content     string             `bson:"content" json:"content"`
	Category    string             `bson:"category" json:"category"`
	SourceURL   string             `bson:"url" json:"url"`
	LastUpdated time.Time          `bson:"lastUpdated" json:"lastUpdated"`
	Active      bool               `bson:"isActive" json:"isActive"`
}

// ChatLogEntry records a single user/assistant exchange.
type ChatLogEntry struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SessionID         string             `bson:"sessionId" json:"sessionId"`
	UserMessage       string             `bson:"userMessage" json:"userMessage"`
	AssistantResponse string             `bson:"assistantResponse" json:"assistantResponse"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}
