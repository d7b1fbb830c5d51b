package ingest

import "sort"

// ValidateAll compares the TTL-derived class set against the XMI-derived
// class set, and each Xtext-derived enumeration against the
// JSON-schema-derived enumeration declared under the same rule name,
// reporting anything present on one side but not the other. Neither
// comparison treats its inputs as ordered: orphan detection is set
// membership only, and the output lists are sorted for determinism.
func ValidateAll(ttlTypes, xmiClasses []string, xtextEnums, schemaEnums []EnumInfo) (TypeCoverageReport, []EnumCoverageReport) {
	return validateTypeCoverage(ttlTypes, xmiClasses), validateEnumCoverage(xtextEnums, schemaEnums)
}

func validateTypeCoverage(ttlTypes, xmiClasses []string) TypeCoverageReport {
	ttlSet := toSet(ttlTypes)
	xmiSet := toSet(xmiClasses)

	var report TypeCoverageReport
	for name := range ttlSet {
		if !xmiSet[name] {
			report.OnlyInTTL = append(report.OnlyInTTL, name)
		}
	}
	for name := range xmiSet {
		if !ttlSet[name] {
			report.OnlyInXMI = append(report.OnlyInXMI, name)
		}
	}
	sort.Strings(report.OnlyInTTL)
	sort.Strings(report.OnlyInXMI)
	return report
}

func validateEnumCoverage(xtextEnums, schemaEnums []EnumInfo) []EnumCoverageReport {
	xtextByName := make(map[string][]string, len(xtextEnums))
	for _, e := range xtextEnums {
		xtextByName[e.Name] = e.Values
	}
	schemaByName := make(map[string][]string, len(schemaEnums))
	for _, e := range schemaEnums {
		schemaByName[e.Name] = e.Values
	}

	names := make(map[string]bool, len(xtextByName)+len(schemaByName))
	for name := range xtextByName {
		names[name] = true
	}
	for name := range schemaByName {
		names[name] = true
	}

	var reports []EnumCoverageReport
	for name := range names {
		xtextSet := toSet(xtextByName[name])
		schemaSet := toSet(schemaByName[name])

		var report EnumCoverageReport
		report.RuleName = name
		for v := range xtextSet {
			if !schemaSet[v] {
				report.OnlyInXtext = append(report.OnlyInXtext, v)
			}
		}
		for v := range schemaSet {
			if !xtextSet[v] {
				report.OnlyInSchema = append(report.OnlyInSchema, v)
			}
		}
		if len(report.OnlyInXtext) == 0 && len(report.OnlyInSchema) == 0 {
			continue
		}
		sort.Strings(report.OnlyInXtext)
		sort.Strings(report.OnlyInSchema)
		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].RuleName < reports[j].RuleName })
	return reports
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
