package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tunedex/tunedex/model"
)

func TestCleanNormalizesSpelling(t *testing.T) {
	set := Clean("The Blackbird's Favorites!")
	assert.Equal(t, "blackbird favourite", set.Key())
}

func TestCleanIsIdempotent(t *testing.T) {
	once := Clean("Paddy Fahey's, No. 2")
	twice := Clean(once.Key())
	assert.Equal(t, once.Key(), twice.Key())
}

func TestCleanOfPunctuationOnlyIsEmpty(t *testing.T) {
	assert.Empty(t, Clean("!?! 123"))
	assert.Empty(t, Clean("   "))
}

func TestSubsetOfIsStrict(t *testing.T) {
	assert := assert.New(t)
	small := Clean("blackbird")
	big := Clean("blackbird reel")
	assert.True(small.SubsetOf(big))
	assert.False(big.SubsetOf(small))
	assert.False(small.SubsetOf(small))
}

func TestDeduplicateSingleAlias(t *testing.T) {
	got := Deduplicate([]string{"blackbird reel"})
	assert.Equal(t, []string{"blackbird reel"}, got)
}

func TestDeduplicateCollapsesPunctuationVariants(t *testing.T) {
	// First spelling encountered wins.
	got := Deduplicate([]string{"Blackbird!", "  blackbird"})
	assert.Equal(t, []string{"Blackbird!"}, got)
}

func TestDeduplicateRemovesSubsets(t *testing.T) {
	got := Deduplicate([]string{"the blackbird", "blackbird reel", "blackbird"})
	assert.Equal(t, []string{"blackbird reel"}, got)
}

func TestDeduplicateKeepsNonOverlappingAliases(t *testing.T) {
	got := Deduplicate([]string{"the silver spear", "an spealadoir"})
	assert.Equal(t, []string{"an spealadoir", "the silver spear"}, got)
}

func TestDeduplicateDropsEmptyAliases(t *testing.T) {
	got := Deduplicate([]string{"...", "blackbird"})
	assert.Equal(t, []string{"blackbird"}, got)
}

func TestGatherPutsDisplayNameFirst(t *testing.T) {
	records := []model.AliasRecord{
		{TuneID: "182", Alias: "The Blackbird"},
		{TuneID: "182", Alias: "Blackbird Reel"},
		{TuneID: "182", Alias: "blackbird"},
	}
	tunes := []model.SettingRecord{
		{TuneID: "182", SettingID: "1", Name: "Blackbird Reel"},
	}

	groups, err := Gather(records, tunes)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("blackbird reel", groups["182"][0])
	assert.NotContains(groups["182"], "the blackbird")
	assert.NotContains(groups["182"], "blackbird")
}

func TestGatherRemovesNameDuplicateBeforePrepending(t *testing.T) {
	records := []model.AliasRecord{
		{TuneID: "9", Alias: "an spealadoir"},
		{TuneID: "9", Alias: "the silver spear"},
	}
	tunes := []model.SettingRecord{
		{TuneID: "9", SettingID: "1", Name: "The Silver Spear"},
	}

	groups, err := Gather(records, tunes)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"the silver spear", "an spealadoir"}, groups["9"])
}

func TestGatherPrependsNameOncePerTune(t *testing.T) {
	// The name repeats on every setting of a tune but is only added once.
	tunes := []model.SettingRecord{
		{TuneID: "7", SettingID: "1", Name: "Morrison's"},
		{TuneID: "7", SettingID: "2", Name: "Morrison's"},
	}

	groups, err := Gather(nil, tunes)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"morrison's"}, groups["7"])
}

func TestGatherKeepsAliasOnlyTunes(t *testing.T) {
	records := []model.AliasRecord{{TuneID: "55", Alias: "Out on the Ocean"}}

	groups, err := Gather(records, nil)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"out on the ocean"}, groups["55"])
}

func TestGatherFailsOnEmptyGroup(t *testing.T) {
	// A tune whose only alias cleans to nothing has no usable name at all.
	records := []model.AliasRecord{{TuneID: "3", Alias: "!!!"}}

	_, err := Gather(records, nil)
	assert.Error(t, err)
}
