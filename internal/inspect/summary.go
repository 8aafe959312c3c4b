package inspect

import (
	"github.com/eLbARROS13/OH-Toolkit/internal/document"
	"github.com/eLbARROS13/OH-Toolkit/internal/extract"
	"github.com/eLbARROS13/OH-Toolkit/internal/profile"
	"github.com/eLbARROS13/OH-Toolkit/internal/table"
)

// Summarize builds a data-availability matrix: one row per subject, one
// column per top-level section seen anywhere in the set. A subject missing
// a section gets a null cell there, so sparse cohorts are visible at a
// glance. For object sections the cell holds the section's key count, for
// anything else the kind name.
func Summarize(set *profile.Set) *table.Table {
	var records []*extract.Record
	for _, id := range set.Subjects() {
		rec := extract.NewRecord()
		rec.Set(extract.SubjectColumn, id)

		prof, _ := set.Get(id)
		if prof != nil && prof.IsObject() {
			for _, section := range prof.Keys() {
				child, _ := prof.Field(section)
				rec.Set(section, sectionCell(child))
			}
		}
		records = append(records, rec)
	}
	return table.FromRecords(records)
}

func sectionCell(v *document.Value) any {
	if v.IsObject() {
		return int64(v.Len())
	}
	return v.Kind().String()
}
