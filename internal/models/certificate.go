package models

import "time"

// CertificateOrganization is the issuing body printed on certificates.
const CertificateOrganization = "CoachyLearning"

// Certificate is the descriptor handed to the document renderer. Rendering
// itself happens outside this service.
type Certificate struct {
	ID             string    `json:"id"`
	StudentName    string    `json:"studentName"`
	CourseTitle    string    `json:"courseTitle"`
	CompletionDate time.Time `json:"completionDate"`
	Organization   string    `json:"organization"`
}
