package domain

import "encoding/json"

// StateVarKey is the name of the environment variable that carries the
// encoded env-state blob across prompt invocations.
const StateVarKey = "ENVOLUNTARY_ENV_STATE"

// EnvState is the persisted record stored, encoded, as the value of
// StateVarKey: the ordered list of flake references that produced the
// current environment, and the reversal instructions for the variables the
// tool introduced or overwrote.
type EnvState struct {
	FlakeReferences []string      `json:"flake_references"`
	EnvVarsReset    *EnvVarsState `json:"env_vars_reset"`
}

// FlakeReferencesEqual reports whether refs matches the flake references
// recorded in this state, in order.
func (s *EnvState) FlakeReferencesEqual(refs []string) bool {
	if len(s.FlakeReferences) != len(refs) {
		return false
	}
	for i, r := range refs {
		if s.FlakeReferences[i] != r {
			return false
		}
	}
	return true
}

// jsonEnvVarsState is the wire shape for EnvVarsState: parallel arrays
// instead of a map, to preserve order through encoding/json (which does not
// guarantee map key order).
type jsonEnvVarsState struct {
	Names  []string `json:"names"`
	Values []string `json:"values"`
	Absent []bool   `json:"absent"`
}

// MarshalJSON implements json.Marshaler, preserving insertion order.
func (s *EnvVarsState) MarshalJSON() ([]byte, error) {
	w := jsonEnvVarsState{
		Names:  make([]string, 0, len(s.order)),
		Values: make([]string, 0, len(s.order)),
		Absent: make([]bool, 0, len(s.order)),
	}
	for _, name := range s.order {
		v := s.vals[name]
		w.Names = append(w.Names, name)
		w.Values = append(w.Values, v.Value)
		w.Absent = append(w.Absent, v.Absent)
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler, restoring insertion order.
func (s *EnvVarsState) UnmarshalJSON(data []byte) error {
	var w jsonEnvVarsState
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*s = EnvVarsState{vals: make(map[string]VarValue, len(w.Names))}
	for i, name := range w.Names {
		if w.Absent[i] {
			s.SetAbsent(name)
		} else {
			s.SetValue(name, w.Values[i])
		}
	}
	return nil
}
