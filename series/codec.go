package series

import (
	"gopkg.in/yaml.v3"
)

func Unmarshal(d []byte) (ds Dataset, err error) {
	err = yaml.Unmarshal(d, &ds)

	return
}

func Marshal(ds Dataset) ([]byte, error) {
	return yaml.Marshal(ds)
}
