package models

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// versionedIdentifierPattern matches identifiers of the form
// <baseName>-v<major>.<minor>.<patch>. The base name group is greedy and the
// pattern is end-anchored, so a base name may itself contain hyphens and
// digits; only the final version suffix is split off.
var versionedIdentifierPattern = regexp.MustCompile(`^(.+)-v\d+\.\d+\.\d+$`)

// Resolve returns requestedID when the catalog contains it verbatim.
// Otherwise it parses the requested identifier into a base name and returns
// the first non-deprecated descriptor sharing that base name, in catalog
// order. The catalog is never modified, and no version comparison is
// performed: the host lists newer versions first.
//
// The structured logger is optional; nil suppresses diagnostics.
func Resolve(requestedID string, catalog Collection, structuredLogger *zap.SugaredLogger) (string, error) {
	for _, descriptor := range catalog {
		if descriptor.ID == requestedID {
			if structuredLogger != nil {
				structuredLogger.Debugw(logEventModelFound, logFieldModelID, requestedID)
			}
			return requestedID, nil
		}
	}

	if submatches := versionedIdentifierPattern.FindStringSubmatch(requestedID); submatches != nil {
		baseName := submatches[1]
		if structuredLogger != nil {
			structuredLogger.Infow(
				logEventExactModelMissing,
				logFieldRequestedID, requestedID,
				logFieldBaseName, baseName,
			)
		}
		basePrefix := baseName + versionPrefixSeparator
		for _, descriptor := range catalog {
			if descriptor.Deprecated {
				continue
			}
			if strings.HasPrefix(descriptor.ID, basePrefix) {
				if structuredLogger != nil {
					structuredLogger.Infow(
						logEventFallbackModelUsed,
						logFieldModelID, descriptor.ID,
						logFieldModelTitle, descriptor.Title,
						logFieldModelVersion, descriptor.Version,
					)
				}
				return descriptor.ID, nil
			}
		}
	}

	return "", newNotFoundError(requestedID, catalog)
}
