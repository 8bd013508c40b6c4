// Package ranks resolves hierarchy levels and judicial functions into
// display titles for the magistratura hierarchy.
package ranks

// Function identifies the judicial track a collaborator serves in.
type Function string

const (
	FunctionRequirente Function = "requirente"
	FunctionGiudicante Function = "giudicante"
	FunctionEntrambi   Function = "entrambi"
	FunctionNessuna    Function = "nessuna"
)

// Valid reports whether f is one of the recognized function values.
func (f Function) Valid() bool {
	switch f {
	case FunctionRequirente, FunctionGiudicante, FunctionEntrambi, FunctionNessuna:
		return true
	}
	return false
}

// Prosecutes reports whether the function includes the prosecuting track.
func (f Function) Prosecutes() bool {
	return f == FunctionRequirente || f == FunctionEntrambi
}

// Judges reports whether the function includes the judging track.
func (f Function) Judges() bool {
	return f == FunctionGiudicante || f == FunctionEntrambi
}

// MaxLevel is the highest hierarchy level in the magistratura.
const MaxLevel = 11

// Title resolves a hierarchy level and function into a display title.
// Levels 10 and 11 hold leadership titles regardless of function,
// levels 4 through 9 branch on the prosecuting or judging track, and
// levels 0 through 3 hold shared magistrate titles. Every other
// combination resolves to "Cittadino".
func Title(level int, fn Function) string {
	switch level {
	case 11:
		return "Procuratore Generale"
	case 10:
		return "Procuratore Vicario"
	}

	if fn == FunctionRequirente {
		switch level {
		case 9:
			return "Procuratore Aggiunto"
		case 8:
			return "Procuratore Capo"
		case 7:
			return "Procuratore Coordinatore"
		case 6:
			return "Procuratore Superiore"
		case 5:
			return "Procuratore"
		case 4:
			return "Sostituto Procuratore"
		}
	}

	if fn == FunctionGiudicante {
		switch level {
		case 9:
			return "Presidente Corte d'Appello"
		case 8:
			return "Vice Pres. Corte d'Appello"
		case 7:
			return "Giudice Coordinatore CdA"
		case 6:
			return "Giudice Superiore CdA"
		case 5:
			return "Giudice Corte d'Appello"
		case 4:
			return "Giudice Ausiliario CdA"
		}
	}

	switch level {
	case 3:
		return "Magistrato Capo"
	case 2:
		return "Magistrato Togato"
	case 1:
		return "Magistrato Ordinario"
	case 0:
		return "Magistrato Tirocinante"
	}

	return "Cittadino"
}
