package dto

import "github.com/Sanjida-Parven-Alfe/Backend/internal/domain"

// Write results mirror the shapes MongoDB drivers report, which the web
// client already consumes.

type InsertResponse struct {
	Acknowledged bool    `json:"acknowledged"`
	InsertedID   *string `json:"insertedId"`
}

type UserExistsResponse struct {
	Message    string  `json:"message"`
	InsertedID *string `json:"insertedId"`
}

type UpdateResponse struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}

type DecoratorCheckResponse struct {
	Decorator bool `json:"decorator"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type PaymentResponse struct {
	InsertResult InsertResponse `json:"insertResult"`
	UpdateResult UpdateResponse `json:"updateResult"`
}

type StatsResponse struct {
	Users        int64                  `json:"users"`
	Services     int64                  `json:"services"`
	Bookings     int64                  `json:"bookings"`
	Revenue      float64                `json:"revenue"`
	ServiceStats []domain.CategoryCount `json:"serviceStats"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToInsertResponse(id string) InsertResponse {
	return InsertResponse{Acknowledged: true, InsertedID: &id}
}

func ToUpdateResponse(r domain.UpdateResult) UpdateResponse {
	return UpdateResponse{
		Acknowledged:  true,
		MatchedCount:  r.MatchedCount,
		ModifiedCount: r.ModifiedCount,
	}
}

func ToDeleteResponse(r domain.DeleteResult) DeleteResponse {
	return DeleteResponse{Acknowledged: true, DeletedCount: r.DeletedCount}
}

func ToPaymentResponse(r *domain.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		InsertResult: ToInsertResponse(r.Payment.ID.Hex()),
		UpdateResult: ToUpdateResponse(r.Update),
	}
}

func ToStatsResponse(s *domain.AdminStats) StatsResponse {
	serviceStats := s.ServiceStats
	if serviceStats == nil {
		serviceStats = []domain.CategoryCount{}
	}

	return StatsResponse{
		Users:        s.Users,
		Services:     s.Services,
		Bookings:     s.Bookings,
		Revenue:      s.Revenue,
		ServiceStats: serviceStats,
	}
}
