package model

// DriveResult tags how a drive ended.
type DriveResult string

const (
	DriveTouchdown       DriveResult = "touchdown"
	DriveFieldGoal       DriveResult = "field_goal"
	DrivePunt            DriveResult = "punt"
	DriveTurnover        DriveResult = "turnover"
	DriveTurnoverOnDowns DriveResult = "turnover_on_downs"
	DriveEndOfHalf       DriveResult = "end_of_half"
	DriveSafety          DriveResult = "safety"
	DriveInProgress      DriveResult = "in_progress"
)

// Drive is one contiguous possession.
type Drive struct {
	DriveNumber   int         `json:"driveNumber"`
	Team          Side        `json:"team"`
	StartPosition int         `json:"startPosition"`
	StartQuarter  Quarter     `json:"startQuarter"`
	StartClock    float64     `json:"startClock"`
	PlayCount     int         `json:"playCount"`
	NetYards      int         `json:"netYards"`
	Result        DriveResult `json:"result"`
	ElapsedSeconds int        `json:"elapsedSeconds"`
}
