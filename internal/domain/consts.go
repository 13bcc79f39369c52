package domain

// DateLayout is the canonical birth date format (DD.MM.YYYY).
const DateLayout = "02.01.2006"

// MonthNames maps calendar month numbers to their English names, used by the
// stats breakdown rendering.
var MonthNames = map[int]string{
	1:  "January",
	2:  "February",
	3:  "March",
	4:  "April",
	5:  "May",
	6:  "June",
	7:  "July",
	8:  "August",
	9:  "September",
	10: "October",
	11: "November",
	12: "December",
}
