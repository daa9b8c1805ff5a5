package model

const (
	AppointmentDateLayout = "2006-01-02"
	AppointmentTimeLayout = "15:04"
)

type Appointment struct {
	ID        int64  `db:"appointment_id" json:"appointment_id"`
	PatientID int64  `db:"patient_id" json:"patient_id"`
	DoctorID  int64  `db:"doctor_id" json:"doctor_id"`
	Date      string `db:"appointment_date" json:"appointment_date"`
	Time      string `db:"appointment_time" json:"appointment_time"`
	Status    string `db:"status" json:"status"`
}

// AppointmentView is one row of the appointments join with patient and doctor names.
type AppointmentView struct {
	ID          int64  `db:"appointment_id" json:"appointment_id"`
	PatientName string `db:"patient_name" json:"patient_name"`
	DoctorName  string `db:"doctor_name" json:"doctor_name"`
	Date        string `db:"appointment_date" json:"appointment_date"`
	Time        string `db:"appointment_time" json:"appointment_time"`
	Status      string `db:"status" json:"status"`
}

// Option is an id/name pair used to fill selection lists.
type Option struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// AppointmentListing is everything the appointments page shows.
type AppointmentListing struct {
	Appointments []*AppointmentView `json:"appointments"`
	Patients     []*Option          `json:"patients"`
	Doctors      []*Option          `json:"doctors"`
}

type CreateAppointmentRequest struct {
	PatientID string `form:"patient_id" binding:"required,number,max=18"`
	DoctorID  string `form:"doctor_id" binding:"required,number,max=18"`
	Date      string `form:"appointment_date" binding:"required,datetime=2006-01-02"`
	Time      string `form:"appointment_time" binding:"required,datetime=15:04"`
	Status    string `form:"status" binding:"required,max=20"`
}
