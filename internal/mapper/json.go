package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// asJSON marshals a sub-document into a jsonb column value. Marshal cannot
// fail for the plain structs used here, so errors degrade to null.
func asJSON(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

// fromJSON unmarshals a jsonb column into out, leaving out zero-valued when
// the column is null or holds malformed data.
func fromJSON(data datatypes.JSON, out interface{}) {
	if len(data) == 0 {
		return
	}
	_ = json.Unmarshal(data, out)
}
