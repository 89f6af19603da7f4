package redisKey

const (
	CACHE_NOTIFY_DEDUP = "dedup:notify:" // 渠道回調去重, value=首次收到时间
)
