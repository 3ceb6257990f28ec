// internal/domain/homework/homework.go
package homework

// Status is the review state of a submission as reported by the API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Keys of the API payload.
const (
	KeyHomeworks    = "homeworks"
	KeyCurrentDate  = "current_date"
	KeyHomeworkName = "homework_name"
	KeyStatus       = "status"
)

// Verdicts maps every recognised status to the sentence sent to the user.
var Verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the sentence for s and whether s is a known status.
func Verdict(s Status) (string, bool) {
	v, ok := Verdicts[s]
	return v, ok
}
