package propgen_test

import (
	"testing"

	"github.com/fwojciec/propgen"
	"github.com/stretchr/testify/assert"
)

func TestIsOEMTechnology(t *testing.T) {
	t.Parallel()

	t.Run("matches known OEM platforms case-insensitively", func(t *testing.T) {
		t.Parallel()

		for _, tech := range []string{
			"Salesforce Sales Cloud",
			"OutSystems Platform",
			"SAP S/4HANA",
			"Oracle Fusion",
			"Microsoft Dynamics 365",
			"ServiceNow",
			"workday HCM",
		} {
			assert.True(t, propgen.IsOEMTechnology(tech), tech)
		}
	})

	t.Run("does not match custom technology stacks", func(t *testing.T) {
		t.Parallel()

		for _, tech := range []string{
			"Python with Django",
			"React Native",
			"Go microservices on Kubernetes",
			"",
		} {
			assert.False(t, propgen.IsOEMTechnology(tech), tech)
		}
	})
}
