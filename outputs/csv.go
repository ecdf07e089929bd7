package outputs

import (
	"bytes"
	"encoding/csv"

	"github.com/karlseguin/mcli/driver"
	log "github.com/sirupsen/logrus"
)

func CSV(result *driver.Result) []string {
	if !result.IsQuery() || len(result.Columns) == 0 {
		return nil
	}

	var buffer bytes.Buffer
	w := csv.NewWriter(&buffer)
	w.Write(result.Columns)
	w.WriteAll(result.Rows)
	if err := w.Error(); err != nil {
		// can only come from the underlying buffer
		log.WithFields(log.Fields{"context": "csv output"}).Error(err)
	}
	return lines(buffer.String())
}
