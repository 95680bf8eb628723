package model

import "time"

// SalaryType enumerates how a team member is paid.
type SalaryType int

const (
	SalaryMonthly SalaryType = 1
	SalaryDaily   SalaryType = 2
)

func (s SalaryType) String() string {
	switch s {
	case SalaryMonthly:
		return "Monthly"
	case SalaryDaily:
		return "Daily"
	default:
		return "Unknown"
	}
}

type Position struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type PositionRequest struct {
	Name string `json:"name" validate:"required,max=250"`
}

type TeamMember struct {
	ID               int64      `json:"id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	MiddleName       string     `json:"middle_name"`
	PositionID       int64      `json:"position_id"`
	Position         string     `json:"position"`
	FromWorkingHours string     `json:"from_working_hours"`
	ToWorkingHours   string     `json:"to_working_hours"`
	SalaryType       SalaryType `json:"-"`
	SalaryTypeName   string     `json:"salary_type"`
	Salary           float64    `json:"salary"`
	WorkStartDate    Date       `json:"work_start_date"`
	Image            string     `json:"image"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TeamMemberPublic is the projection shown on the public site.
type TeamMemberPublic struct {
	ID        int64  `json:"id"`
	Image     string `json:"image"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
}

type TeamMemberRequest struct {
	FirstName        string     `json:"first_name" validate:"required,personname,max=250"`
	LastName         string     `json:"last_name" validate:"required,personname,max=250"`
	MiddleName       string     `json:"middle_name" validate:"omitempty,personname,max=250"`
	PositionID       int64      `json:"position" validate:"required,gt=0"`
	FromWorkingHours string     `json:"from_working_hours" validate:"required,clock"`
	ToWorkingHours   string     `json:"to_working_hours" validate:"required,clock"`
	SalaryType       SalaryType `json:"salary_type" validate:"required,oneof=1 2"`
	Salary           float64    `json:"salary" validate:"gte=0"`
	WorkStartDate    Date       `json:"work_start_date" validate:"required"`
	Image            string     `json:"image" validate:"omitempty,url"`
}

func (r TeamMemberRequest) TeamMember() *TeamMember {
	return &TeamMember{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		MiddleName:       r.MiddleName,
		PositionID:       r.PositionID,
		FromWorkingHours: r.FromWorkingHours,
		ToWorkingHours:   r.ToWorkingHours,
		SalaryType:       r.SalaryType,
		Salary:           r.Salary,
		WorkStartDate:    r.WorkStartDate,
		Image:            r.Image,
	}
}

type TeamMemberPatch struct {
	FirstName        *string     `json:"first_name" validate:"omitempty,personname,max=250"`
	LastName         *string     `json:"last_name" validate:"omitempty,personname,max=250"`
	MiddleName       *string     `json:"middle_name" validate:"omitempty,personname,max=250"`
	PositionID       *int64      `json:"position" validate:"omitempty,gt=0"`
	FromWorkingHours *string     `json:"from_working_hours" validate:"omitempty,clock"`
	ToWorkingHours   *string     `json:"to_working_hours" validate:"omitempty,clock"`
	SalaryType       *SalaryType `json:"salary_type" validate:"omitempty,oneof=1 2"`
	Salary           *float64    `json:"salary" validate:"omitempty,gte=0"`
	WorkStartDate    *Date       `json:"work_start_date"`
	Image            *string     `json:"image" validate:"omitempty,url"`
}

func (p TeamMemberPatch) Apply(m *TeamMember) {
	if p.FirstName != nil {
		m.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		m.LastName = *p.LastName
	}
	if p.MiddleName != nil {
		m.MiddleName = *p.MiddleName
	}
	if p.PositionID != nil {
		m.PositionID = *p.PositionID
	}
	if p.FromWorkingHours != nil {
		m.FromWorkingHours = *p.FromWorkingHours
	}
	if p.ToWorkingHours != nil {
		m.ToWorkingHours = *p.ToWorkingHours
	}
	if p.SalaryType != nil {
		m.SalaryType = *p.SalaryType
	}
	if p.Salary != nil {
		m.Salary = *p.Salary
	}
	if p.WorkStartDate != nil {
		m.WorkStartDate = *p.WorkStartDate
	}
	if p.Image != nil {
		m.Image = *p.Image
	}
}
