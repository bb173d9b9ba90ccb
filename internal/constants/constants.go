package constants

// Ключи кэша
const (
	CacheKeyContacts = "contacts:data"
)

// Ключи маршрутизации событий о лидах
const (
	RoutingKeyQuizSubmitted         = "leads.quiz.submitted"
	RoutingKeyInquiryCreated        = "leads.inquiry.created"
	RoutingKeyContactRequestCreated = "leads.contact_request.created"
)

// Типы и версии событий, совпадают с именами JSON-схем
const (
	EventQuizSubmitted         = "quiz-submitted"
	EventInquiryCreated        = "inquiry-created"
	EventContactRequestCreated = "contact-request-created"
	EventVersionV1             = "v1"

	RequestQuizSubmission = "quiz-submission"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)
