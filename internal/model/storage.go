package model

// StorageStatus holds aggregate quota and usage figures for the current user
// together with the file list, exactly as the storage service reports them.
type StorageStatus struct {
	Username         string       `json:"username"`
	CurrentUsageMb   float64      `json:"current_usage_mb"`
	StorageLimitMb   float64      `json:"storage_limit_mb"`
	AvailableSpaceMb float64      `json:"available_space_mb"`
	UsagePercentage  float64      `json:"usage_percentage"`
	ShouldAlert      bool         `json:"should_alert"`
	Files            []VideoEntry `json:"files"`
}

// RecalcDerived refreshes the derived fields after an incremental patch of
// CurrentUsageMb so that gauges stay consistent without a full refetch.
func (st *StorageStatus) RecalcDerived() {
	st.AvailableSpaceMb = st.StorageLimitMb - st.CurrentUsageMb
	if st.StorageLimitMb > 0 {
		st.UsagePercentage = (st.CurrentUsageMb / st.StorageLimitMb) * 100
	} else {
		st.UsagePercentage = 0
	}
}

// AvailableFraction returns available space as a 0..1 fraction of the limit
func (st *StorageStatus) AvailableFraction() float64 {
	if st.StorageLimitMb <= 0 {
		return 0
	}
	f := st.AvailableSpaceMb / st.StorageLimitMb
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// UsedFraction returns used space as a 0..1 fraction of the limit
func (st *StorageStatus) UsedFraction() float64 {
	if st.StorageLimitMb <= 0 {
		return 0
	}
	f := st.CurrentUsageMb / st.StorageLimitMb
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// FilesSizeMb returns the sum of SizeMb over all entries. It must always
// equal CurrentUsageMb; a divergence indicates a synchronization bug.
func (st *StorageStatus) FilesSizeMb() float64 {
	var total float64
	for i := range st.Files {
		total += st.Files[i].SizeMb
	}
	return total
}
