package kv

import "context"

// Store 是持久层的统一端口：按字符串 key 读写整条记录。
// 所有业务组件只依赖这个接口，不直接触碰 Redis / Postgres。
// 写入永远是整值覆盖，没有部分合并。
type Store interface {
	// Get 返回 key 对应的原始值；不存在时 ok=false 且 err=nil。
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set 整值覆盖写入。
	Set(ctx context.Context, key, value string) error

	// Remove 删除 key，key 不存在时不报错。
	Remove(ctx context.Context, key string) error

	// Keys 返回所有以 prefix 开头的 key。
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Clear 删除本应用的全部 key，用于数据重置。
	Clear(ctx context.Context) error
}
