package contact

// Request is a submission of the public contact form.
type Request struct {
	Name                  string `json:"name" validate:"required,min=1,max=100"`
	Email                 string `json:"email" validate:"required,email"`
	Company               string `json:"company" validate:"max=100"`
	Phone                 string `json:"phone" validate:"max=30"`
	Service               string `json:"service" validate:"max=100"`
	ProjectType           string `json:"project_type" validate:"max=100"`
	Budget                string `json:"budget" validate:"max=100"`
	Timeline              string `json:"timeline" validate:"max=100"`
	Priority              string `json:"priority" validate:"max=50"`
	TechnicalRequirements string `json:"technical_requirements" validate:"max=5000"`
	Message               string `json:"message" validate:"required,min=1,max=5000"`
}

const (
	notProvided   = "Not provided"
	notSpecified  = "Not specified"
	noneSpecified = "None specified"
)

// WithDefaults fills blank optional fields with the placeholders shown in the notification email.
func (r Request) WithDefaults() Request {
	def := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	def(&r.Company, notProvided)
	def(&r.Phone, notProvided)
	def(&r.Service, notSpecified)
	def(&r.ProjectType, notSpecified)
	def(&r.Budget, notSpecified)
	def(&r.Timeline, notSpecified)
	def(&r.Priority, notSpecified)
	def(&r.TechnicalRequirements, noneSpecified)
	return r
}
